package domain

import "context"

// CommandExecutor spawns external processes.
type CommandExecutor interface {
	// Run starts the command and waits for it to exit.
	// It returns a *SpawnError if the process could not be started and an
	// error wrapping ErrNonZeroExit if it exited unsuccessfully.
	Run(ctx context.Context, cmd *ExecCommand) error
}

// TerminalLauncher opens a new terminal window running a command.
type TerminalLauncher interface {
	// Launch opens a terminal that runs command after the startup delay.
	// It returns the success message on success.
	Launch(ctx context.Context, command string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration.
	Load() (*Config, error)

	// Path returns the config file path, whether or not it exists.
	Path() string
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, string) {}

// Info implements Logger.
func (NopLogger) Info(string, string) {}

// Warn implements Logger.
func (NopLogger) Warn(string, string) {}

// Error implements Logger.
func (NopLogger) Error(string, string) {}
