package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2, 0, false)
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("x"), 700<<10)
	for i := 0; i < 5; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 2)
	assert.Greater(t, backups, 0)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(1<<20))
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 5, 0, true)
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), 600<<10)
	for i := 0; i < 2; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &stderr},
		FileConfig{Dir: dir, MaxSizeMB: 1},
	)
	require.NoError(t, err)

	logger.Info().Str("form", "households/intake").Msg("opened")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"form":"households/intake"`)
	assert.Contains(t, stderr.String(), `"message":"opened"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	var out bytes.Buffer
	logger, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json", Output: &out}, FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("stderr only")
	assert.Contains(t, out.String(), "stderr only")
}
