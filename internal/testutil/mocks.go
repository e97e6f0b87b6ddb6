// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/runoshun/agentterm/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Errors are looked up by program name; programs without an entry succeed.
// It is safe for concurrent use.
type MockCommandExecutor struct {
	Errors map[string]error
	calls  []domain.ExecCommand
	mu     sync.Mutex
}

// NewMockCommandExecutor creates a MockCommandExecutor where every program succeeds.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Errors: make(map[string]error),
	}
}

// Run records the command and returns the configured error for its program.
func (m *MockCommandExecutor) Run(_ context.Context, cmd *domain.ExecCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *cmd
	c.Args = append([]string(nil), cmd.Args...)
	m.calls = append(m.calls, c)
	return m.Errors[cmd.Program]
}

// Calls returns a copy of the recorded commands in spawn order.
func (m *MockCommandExecutor) Calls() []domain.ExecCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ExecCommand(nil), m.calls...)
}

// Programs returns the program names of the recorded commands in spawn order.
func (m *MockCommandExecutor) Programs() []string {
	calls := m.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Program
	}
	return names
}

// MissingBinary returns a SpawnError as an executor would report for a program not on PATH.
func MissingBinary(program string) error {
	return &domain.SpawnError{
		Program: program,
		Err:     fmt.Errorf("exec: %q: executable file not found in $PATH", program),
	}
}

// ExitFailure returns an error as an executor would report for a non-zero exit.
func ExitFailure(program string) error {
	return fmt.Errorf("%w: %s: exit status 1", domain.ErrNonZeroExit, program)
}

// MockTerminalLauncher is a test double for domain.TerminalLauncher.
type MockTerminalLauncher struct {
	Err      error
	Message  string
	Commands []string
	mu       sync.Mutex
}

// Launch records command and returns the configured result.
func (m *MockTerminalLauncher) Launch(_ context.Context, command string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, command)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Message == "" {
		return domain.LaunchSucceeded, nil
	}
	return m.Message, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	LoadErr  error
	FilePath string
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// Path returns the configured path.
func (m *MockConfigLoader) Path() string {
	return m.FilePath
}

// LogEntry is a line captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry in memory.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (l *RecordingLogger) add(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Warn records a warn entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

// Count returns how many entries were recorded at level.
func (l *RecordingLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
