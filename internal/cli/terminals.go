package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/agentterm/internal/infra/terminal"
	"github.com/spf13/cobra"
)

// sampleCommand is shown in the terminals listing.
const sampleCommand = "<command>"

// newTerminalsCommand creates the terminals command.
func newTerminalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terminals",
		Short: "Show how terminals are launched on this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := terminal.Native()
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Platform:"), s.Platform)
			_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Delayed:"), s.Delayed(sampleCommand))
			if len(s.Candidates) == 0 {
				_, _ = fmt.Fprintln(w, mutedStyle.Render("(no terminal launcher for this platform)"))
				return nil
			}

			_, _ = fmt.Fprintln(w, labelStyle.Render("Candidates:"))
			delayed := s.Delayed(sampleCommand)
			for i, cand := range s.Candidates {
				_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, formatArgv(cand.Name, cand.Args(delayed)))
			}
			if s.Fallback {
				_, _ = fmt.Fprintln(w, mutedStyle.Render("Candidates are tried in order until one succeeds."))
			}
			return nil
		},
	}
}

// formatArgv renders a program and its arguments, quoting those with spaces.
func formatArgv(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, program)
	for _, a := range args {
		if strings.ContainsAny(a, " \t\"") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
