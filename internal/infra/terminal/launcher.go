package terminal

import (
	"context"
	"fmt"

	"github.com/runoshun/agentterm/internal/domain"
)

const logCategory = "terminal"

// Launcher implements domain.TerminalLauncher on top of a CommandExecutor.
// It holds no per-launch state, so one Launcher may serve concurrent calls.
type Launcher struct {
	executor domain.CommandExecutor
	logger   domain.Logger
	strategy Strategy
}

// Ensure Launcher implements domain.TerminalLauncher interface.
var _ domain.TerminalLauncher = (*Launcher)(nil)

// NewLauncher creates a Launcher using the strategy compiled for this platform.
func NewLauncher(executor domain.CommandExecutor, logger domain.Logger) *Launcher {
	return NewLauncherWithStrategy(executor, logger, Native())
}

// NewLauncherWithStrategy creates a Launcher with an explicit strategy.
// This is useful for testing.
func NewLauncherWithStrategy(executor domain.CommandExecutor, logger domain.Logger, strategy Strategy) *Launcher {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Launcher{
		executor: executor,
		logger:   logger,
		strategy: strategy,
	}
}

// Strategy returns the strategy used by this launcher.
func (l *Launcher) Strategy() Strategy {
	return l.strategy
}

// Launch opens a terminal running command after the startup delay.
//
// Each candidate is spawned and waited on in order. Without fallback the
// first candidate decides the result: a spawn error is returned unchanged,
// a failing exit status becomes the strategy's fixed failure. With fallback
// failures are logged and the next candidate is tried; the fixed failure is
// returned only after every candidate failed.
func (l *Launcher) Launch(ctx context.Context, command string) (string, error) {
	s := l.strategy
	if len(s.Candidates) == 0 {
		l.logger.Warn(logCategory, fmt.Sprintf("no terminal candidates for platform %s", s.Platform))
		return "", s.Failure
	}

	delayed := s.Delayed(command)
	for _, c := range s.Candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		cmd := c.Command(delayed)
		l.logger.Debug(logCategory, "spawn: "+cmd.String())

		err := l.executor.Run(ctx, cmd)
		if err == nil {
			l.logger.Info(logCategory, fmt.Sprintf("opened terminal via %s", c.Name))
			return domain.LaunchSucceeded, nil
		}

		l.logger.Warn(logCategory, fmt.Sprintf("%s failed: %v", c.Name, err))
		if !s.Fallback {
			if domain.IsSpawnError(err) {
				return "", err
			}
			return "", s.Failure
		}
	}

	return "", s.Failure
}
