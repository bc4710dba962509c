package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "off": true,
}

// normalizeConfig lowercases enum values and makes paths absolute.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Bridge.BaseURLMode = BaseURLMode(strings.ToLower(strings.TrimSpace(string(config.Bridge.BaseURLMode))))
	if config.Bridge.BaseURLMode == "" {
		config.Bridge.BaseURLMode = BaseURLModeFile
	}
	config.Forms.AppName = strings.TrimSpace(config.Forms.AppName)
	if config.Forms.AppName == "" {
		config.Forms.AppName = defaultAppName
	}

	config.Forms.Root = expandPath(config.Forms.Root)
	config.Database.Path = expandPath(config.Database.Path)
	config.Logging.LogDir = expandPath(config.Logging.LogDir)
}

func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// validateConfig collects every problem into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Database.HealthIntervalMs < minHealthIntervalMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("database.health_interval_ms must be at least %d (got %d)", minHealthIntervalMs, config.Database.HealthIntervalMs))
	}

	if strings.ContainsAny(config.Forms.AppName, `/\`) || config.Forms.AppName == "." || config.Forms.AppName == ".." {
		validationErrors = append(validationErrors,
			fmt.Sprintf("forms.app_name must be a single path segment (got %q)", config.Forms.AppName))
	}

	switch config.Bridge.BaseURLMode {
	case BaseURLModeFile, BaseURLModeServer:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("bridge.base_url_mode must be 'file' or 'server' (got %q)", config.Bridge.BaseURLMode))
	}

	if _, _, err := net.SplitHostPort(config.Server.Addr); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("server.addr must be host:port (got %q)", config.Server.Addr))
	}

	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, off (got %q)", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be 'console' or 'json' (got %q)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}
