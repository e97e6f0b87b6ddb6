package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/agentterm/internal/app"
	"github.com/runoshun/agentterm/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect agentterm configuration.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after applying defaults.

Shows which config file was looked up and the resulting settings in TOML,
or YAML with --yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errors.New("agentterm is not initialized")
			}

			format := usecase.FormatTOML
			if asYAML {
				format = usecase.FormatYAML
			}
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{Format: format})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			switch {
			case out.Path == "":
				_, _ = fmt.Fprintln(w, "- (no config directory)")
			case out.Exists:
				_, _ = fmt.Fprintf(w, "- %s\n", out.Path)
			default:
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.Path)
			}
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective config]")
			_, _ = fmt.Fprint(w, out.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print configuration as YAML")
	return cmd
}
