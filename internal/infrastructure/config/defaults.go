package config

const (
	defaultAppName          = "default"
	defaultHealthIntervalMs = 5000
	defaultServerAddr       = "127.0.0.1:8765"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"

	minHealthIntervalMs = 100

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the built-in configuration. Paths are filled in by
// the loader.
func DefaultConfig() *Config {
	return &Config{
		Forms: FormsConfig{
			AppName: defaultAppName,
			Watch:   true,
		},
		Database: DatabaseConfig{
			HealthIntervalMs: defaultHealthIntervalMs,
		},
		Server: ServerConfig{
			Addr: defaultServerAddr,
		},
		Bridge: BridgeConfig{
			BaseURLMode: BaseURLModeFile,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
