package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/agentterm/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config output formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Format string // FormatTOML (default) or FormatYAML
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Path     string   // Config file path
	Content  string   // Effective configuration rendered in the requested format
	Warnings []string // Problems found while loading
	Exists   bool     // Whether the config file exists
}

// ShowConfig renders the effective configuration.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		loader: loader,
	}
}

// Execute loads the configuration and renders it.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var data []byte
	switch in.Format {
	case "", FormatTOML:
		data, err = toml.Marshal(cfg)
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown format %q", in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}

	out := &ShowConfigOutput{
		Path:     uc.loader.Path(),
		Content:  string(data),
		Warnings: cfg.Warnings,
	}
	if out.Path != "" {
		if _, statErr := os.Stat(out.Path); statErr == nil {
			out.Exists = true
		}
	}
	return out, nil
}
