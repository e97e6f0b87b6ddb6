// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/runoshun/agentterm/internal/domain"
	"github.com/runoshun/agentterm/internal/infra/config"
	"github.com/runoshun/agentterm/internal/infra/executor"
	"github.com/runoshun/agentterm/internal/infra/logging"
	"github.com/runoshun/agentterm/internal/infra/terminal"
	"github.com/runoshun/agentterm/internal/mcp"
	"github.com/runoshun/agentterm/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	Launcher     domain.TerminalLauncher
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Pointer fields
	AppConfig *domain.Config

	closeLogger func() error
}

// New creates a new Container from the global configuration.
// Log lines are mirrored to logOut when it is non-nil.
func New(logOut io.Writer) (*Container, error) {
	return NewWithLoader(config.NewLoader(), logOut)
}

// NewWithLoader creates a new Container using loader for configuration.
func NewWithLoader(loader domain.ConfigLoader, logOut io.Writer) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level), logOut)
	exec := executor.NewClient()

	return &Container{
		Executor:     exec,
		Launcher:     terminal.NewLauncher(exec, logger),
		ConfigLoader: loader,
		Logger:       logger,
		AppConfig:    cfg,
		closeLogger:  logger.Close,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, loader domain.ConfigLoader, launcher domain.TerminalLauncher, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Launcher:     launcher,
		ConfigLoader: loader,
		Logger:       logger,
		AppConfig:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLogger == nil {
		return nil
	}
	return c.closeLogger()
}

// UseCase factory methods

// LaunchTerminalUseCase returns a new LaunchTerminal use case.
func (c *Container) LaunchTerminalUseCase() *usecase.LaunchTerminal {
	return usecase.NewLaunchTerminal(c.Launcher, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// MCPServer returns the MCP server exposing the launch_agent_terminal tool.
func (c *Container) MCPServer(version string) *mcp.Server {
	return mcp.NewServer(&mcp.Config{
		Name:    c.AppConfig.Server.Name,
		Version: version,
	}, c.LaunchTerminalUseCase(), c.Logger)
}
