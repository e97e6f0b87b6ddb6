package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/agentterm/internal/app"
	"github.com/runoshun/agentterm/internal/usecase"
	"github.com/spf13/cobra"
)

// newLaunchCommand creates the launch command.
func newLaunchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <command>...",
		Short: "Open a terminal window running a command",
		Long: `Open a new terminal window and run the given command in it after a
2 second startup delay.

Arguments are joined with spaces and handed to the platform shell without
quoting, so shell syntax such as && and pipes works as typed. Use -- to stop
flag parsing:

  agentterm launch -- claude --resume`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errors.New("agentterm is not initialized")
			}

			out, err := c.LaunchTerminalUseCase().Execute(cmd.Context(), usecase.LaunchTerminalInput{
				Command: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(out.Message))
			return nil
		},
	}
}
