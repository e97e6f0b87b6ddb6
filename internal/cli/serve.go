package cli

import (
	"errors"

	"github.com/runoshun/agentterm/internal/app"
	"github.com/spf13/cobra"
)

// newServeCommand creates the serve command.
func newServeCommand(c *app.Container, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve launch_agent_terminal over MCP on stdio",
		Long: `Run an MCP server on stdin/stdout exposing the launch_agent_terminal tool.

Hosts call the tool with {"command": "<shell command>"}. The result text is
the success message, or a tool error carrying the failure message.
Logs go to stderr and the configured log directory, never stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errors.New("agentterm is not initialized")
			}
			return c.MCPServer(version).Run(cmd.Context())
		},
	}
}
