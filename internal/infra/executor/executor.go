// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/runoshun/agentterm/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run starts the command and waits for its exit status.
// The spawned program's stdio is not connected; terminal emulators and
// scripting hosts open their own windows.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G204 - cmd.Program and cmd.Args come from the terminal strategies
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	if err := execCmd.Start(); err != nil {
		return &domain.SpawnError{Program: cmd.Program, Err: err}
	}

	if err := execCmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s: %s", domain.ErrNonZeroExit, cmd.Program, exitErr)
		}
		return fmt.Errorf("wait for %s: %w", cmd.Program, err)
	}
	return nil
}
