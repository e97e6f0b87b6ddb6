// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/agentterm/internal/domain"
)

// LaunchTerminalInput contains the parameters for opening a terminal.
type LaunchTerminalInput struct {
	Command string // Shell command to run in the new terminal (required)
}

// LaunchTerminalOutput contains the result of opening a terminal.
type LaunchTerminalOutput struct {
	Message string // Human-readable success message
}

// LaunchTerminal is the use case behind launch_agent_terminal.
type LaunchTerminal struct {
	launcher domain.TerminalLauncher
	logger   domain.Logger
}

// NewLaunchTerminal creates a new LaunchTerminal use case.
func NewLaunchTerminal(launcher domain.TerminalLauncher, logger domain.Logger) *LaunchTerminal {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &LaunchTerminal{
		launcher: launcher,
		logger:   logger,
	}
}

// Execute opens a terminal window running in.Command after the startup delay.
// The launcher error is returned unwrapped so its text reaches the host as is.
func (uc *LaunchTerminal) Execute(ctx context.Context, in LaunchTerminalInput) (*LaunchTerminalOutput, error) {
	if in.Command == "" {
		return nil, domain.ErrEmptyCommand
	}

	uc.logger.Info("launch", fmt.Sprintf("launching terminal: %s", in.Command))
	msg, err := uc.launcher.Launch(ctx, in.Command)
	if err != nil {
		uc.logger.Error("launch", fmt.Sprintf("launch failed: %v", err))
		return nil, err
	}

	return &LaunchTerminalOutput{Message: msg}, nil
}
