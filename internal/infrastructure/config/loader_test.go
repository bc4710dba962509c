package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("ENV", "")

	mgr, err := NewManagerAt(filepath.Join(t.TempDir(), "formbridge"))
	require.NoError(t, err)
	return mgr, dataHome
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "default", mgr.viper.GetString("forms.app_name"))
	assert.Equal(t, 5000, mgr.viper.GetInt("database.health_interval_ms"))
	assert.Equal(t, "file", mgr.viper.GetString("bridge.base_url_mode"))
	assert.True(t, mgr.viper.GetBool("forms.watch"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	mgr, dataHome := newTestManager(t)

	require.NoError(t, mgr.Load())

	_, err := os.Stat(mgr.ConfigFile())
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(dataHome, "formbridge", "formbridge.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dataHome, "formbridge", "forms"), cfg.Forms.Root)
	assert.Equal(t, BaseURLModeFile, cfg.Bridge.BaseURLMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := filepath.Dir(mgr.ConfigFile())
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[bridge]
  base_url_mode = "SERVER"

[forms]
  app_name = "census"
  root = "/srv/forms"

[logging]
  level = "Debug"
`), 0o644))

	t.Setenv("FORMBRIDGE_SERVER_ADDR", "0.0.0.0:9000")
	t.Setenv("FORMBRIDGE_LOG_FORMAT", "json")

	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, BaseURLModeServer, cfg.Bridge.BaseURLMode)
	assert.Equal(t, "census", cfg.Forms.AppName)
	assert.Equal(t, "/srv/forms", cfg.Forms.Root)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := filepath.Dir(mgr.ConfigFile())
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[database]
  health_interval_ms = 10
[server]
  addr = "nope"
`), 0o644))

	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.health_interval_ms")
	assert.Contains(t, err.Error(), "server.addr")
}

func TestSave_UpdatesCurrentConfig(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Forms.AppName = "households"
	cfg.Bridge.BaseURLMode = BaseURLModeServer
	require.NoError(t, mgr.Save(cfg))

	assert.Equal(t, "households", mgr.Get().Forms.AppName)

	reloaded, err := NewManagerAt(filepath.Dir(mgr.ConfigFile()))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "households", reloaded.Get().Forms.AppName)
	assert.Equal(t, BaseURLModeServer, reloaded.Get().Bridge.BaseURLMode)
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Forms.AppName = "../escape"
	assert.Error(t, mgr.Save(cfg))
	assert.Equal(t, "default", mgr.Get().Forms.AppName)
}

func TestGetReturnsCopy(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Server.Addr = "10.0.0.1:1"
	assert.Equal(t, "127.0.0.1:8765", mgr.Get().Server.Addr)
}
