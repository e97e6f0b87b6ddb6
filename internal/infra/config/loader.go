// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/agentterm/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// knownKeys lists the accepted keys per section.
var knownKeys = map[string][]string{
	"log":    {"level", "dir"},
	"server": {"name"},
}

var knownLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Loader loads configuration from a TOML file.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/agentterm)
}

// NewLoader creates a new Loader for the default global config directory.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Path returns the config file path.
func (l *Loader) Path() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// Load returns the configuration, falling back to defaults when no file exists.
func (l *Loader) Load() (*domain.Config, error) {
	path := l.Path()
	if path == "" {
		return domain.NewDefaultConfig(), nil
	}

	cfg, err := loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile loads a configuration from a file on top of the defaults.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := domain.NewDefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.Warnings = collectWarnings(raw)
	if !knownLevels[cfg.Log.Level] {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown log level %q, using %s", cfg.Log.Level, domain.DefaultLogLevel))
		cfg.Log.Level = domain.DefaultLogLevel
	}
	return cfg, nil
}

// collectWarnings reports unknown sections and keys in sorted order.
func collectWarnings(raw map[string]any) []string {
	var warnings []string
	for section, value := range raw {
		keys, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s must be a table", section))
			continue
		}
		for k := range m {
			if !contains(keys, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
