package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARN "
	cfg.Bridge.BaseURLMode = ""
	cfg.Forms.AppName = "  "
	cfg.Forms.Root = "relative/forms"

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, BaseURLModeFile, cfg.Bridge.BaseURLMode)
	assert.Equal(t, "default", cfg.Forms.AppName)
	assert.True(t, len(cfg.Forms.Root) > 0 && cfg.Forms.Root[0] == '/')
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad mode", mutate: func(c *Config) { c.Bridge.BaseURLMode = "ftp" }, wantErr: "bridge.base_url_mode"},
		{name: "nested app", mutate: func(c *Config) { c.Forms.AppName = "a/b" }, wantErr: "forms.app_name"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "fast health probe", mutate: func(c *Config) { c.Database.HealthIntervalMs = 50 }, wantErr: "health_interval_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
