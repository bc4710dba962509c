package config

// Config is the formbridge configuration, read from config.toml and
// FORMBRIDGE_* environment variables.
type Config struct {
	Forms    FormsConfig    `mapstructure:"forms" yaml:"forms" toml:"forms" json:"forms"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server" toml:"server" json:"server"`
	Bridge   BridgeConfig   `mapstructure:"bridge" yaml:"bridge" toml:"bridge" json:"bridge"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// FormsConfig locates the form storage tree.
type FormsConfig struct {
	// Root holds one directory per app: <root>/<app>/tables/<table>/forms/<form>[/<version>]
	Root string `mapstructure:"root" yaml:"root" toml:"root" json:"root" jsonschema:"description=Directory holding one subdirectory per app"`
	// AppName is the app used when a form reference does not name one
	AppName string `mapstructure:"app_name" yaml:"app_name" toml:"app_name" json:"app_name"`
	// Watch refreshes the form registry when the tree changes
	Watch bool `mapstructure:"watch" yaml:"watch" toml:"watch" json:"watch"`
}

// DatabaseConfig configures the sqlite store for rows, forms and snapshots.
type DatabaseConfig struct {
	Path             string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	HealthIntervalMs int    `mapstructure:"health_interval_ms" yaml:"health_interval_ms" toml:"health_interval_ms" json:"health_interval_ms" jsonschema:"minimum=100"`
}

// ServerConfig configures the local form server.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr" json:"addr"`
}

// BaseURLMode selects file:// or http:// page URLs.
type BaseURLMode string

const (
	BaseURLModeFile   BaseURLMode = "file"
	BaseURLModeServer BaseURLMode = "server"
)

// BridgeConfig configures how pages are addressed.
type BridgeConfig struct {
	BaseURLMode BaseURLMode `mapstructure:"base_url_mode" yaml:"base_url_mode" toml:"base_url_mode" json:"base_url_mode" jsonschema:"enum=file,enum=server"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir enables a rotating log file in that directory when set
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
}
