// Package cli provides the command-line interface for agentterm.
package cli

import (
	"fmt"

	"github.com/runoshun/agentterm/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupLaunch = "launch"
	groupSetup  = "setup"
)

// NewRootCommand creates the root command for agentterm.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "agentterm",
		Short: "Open agent commands in a new terminal window",
		Long: `agentterm opens a visible terminal window and runs a shell command in it
after a short startup delay. It can be used directly or served to a host
application as the launch_agent_terminal MCP tool.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupLaunch, Title: "Launch Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	launchCmd := newLaunchCommand(c)
	launchCmd.GroupID = groupLaunch

	serveCmd := newServeCommand(c, version)
	serveCmd.GroupID = groupLaunch

	terminalsCmd := newTerminalsCommand()
	terminalsCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(launchCmd, serveCmd, terminalsCmd, configCmd)
	return root
}
