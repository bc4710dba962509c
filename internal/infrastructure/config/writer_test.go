package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[bridge]", "[database]", "[forms]", "[logging]", "[server]"}, sections)
	assert.Contains(t, string(content), `base_url_mode = 'file'`)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n\n[zeta]\n  a = 1\n\n[alpha]\n  b = 2\n"
	out := sortTOMLSections(in)
	assert.Equal(t, "top = 1\n\n[alpha]\n  b = 2\n\n[zeta]\n  a = 1\n", out)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "health_interval_ms")
	assert.Contains(t, string(data), "base_url_mode")
}
