package cli

import "github.com/charmbracelet/lipgloss"

// Styles for command output. lipgloss drops the colors when stdout is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C5CE7")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
)
