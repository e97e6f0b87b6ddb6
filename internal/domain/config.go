package domain

import "path/filepath"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-" yaml:"-"`
	Log      LogConfig    `toml:"log" yaml:"log"`
	Server   ServerConfig `toml:"server" yaml:"server"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`                 // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty" yaml:"dir,omitempty"` // Directory for agentterm.log; empty disables file logging
}

// ServerConfig holds host binding settings from [server] section.
type ServerConfig struct {
	Name string `toml:"name" yaml:"name"` // Implementation name announced to MCP clients
}

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultServerName = "agentterm"
)

// Config file layout.
const (
	AppDirName     = "agentterm"
	ConfigFileName = "config.toml"
	LogFileName    = "agentterm.log"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Server: ServerConfig{
			Name: DefaultServerName,
		},
	}
}

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// LogPath returns the log file path inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, LogFileName)
}
