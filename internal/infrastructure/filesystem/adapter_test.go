package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ExistsAndIsDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "formDef.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	a := New()

	ok, err := a.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	isDir, err := a.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = a.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = a.IsDirectory(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestAdapter_ListDirs(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0o600))

	a := New()
	dirs, err := a.ListDirs(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, dirs)

	dirs, err = a.ListDirs(ctx, filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestAdapter_ReadFileAndModTime(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(file, []byte("<html></html>"), 0o600))

	a := New()
	data, err := a.ReadFile(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	mt, err := a.ModTime(ctx, file)
	require.NoError(t, err)
	assert.False(t, mt.IsZero())
}
