// Package terminal opens user-visible terminal windows running a command.
//
// Each platform has a Strategy: how the startup delay is written, and which
// programs to spawn, in order. The strategy for the running binary is chosen
// at build time by Native; the constructors for every platform are always
// compiled so their argument shapes can be inspected anywhere.
package terminal

import (
	"github.com/runoshun/agentterm/internal/domain"
)

// Platform names.
const (
	PlatformDarwin  = "darwin"
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
)

// Candidate is one program able to open a terminal window.
type Candidate struct {
	// Args builds the program arguments from the delayed command.
	Args func(delayed string) []string
	Name string
}

// Command returns the ExecCommand that runs delayed through this candidate.
func (c Candidate) Command(delayed string) *domain.ExecCommand {
	return domain.NewCommand(c.Name, c.Args(delayed), "")
}

// Strategy describes how one platform opens a terminal.
// Fields are ordered to minimize memory padding.
type Strategy struct {
	// Failure is returned when the candidates could not open a terminal.
	Failure    error
	Platform   string
	Suffix     string // Appended after the command, e.g. to keep the shell open
	Candidates []Candidate
	Delay      domain.DelayStyle
	// Fallback tries every candidate in order and hides individual failures.
	// Without it, a spawn error from the first candidate is returned as is.
	Fallback bool
}

// Delayed returns command wrapped with this platform's startup delay.
func (s Strategy) Delayed(command string) string {
	return domain.DelayedCommand(s.Delay, command, s.Suffix)
}

// Darwin asks Terminal.app, through osascript, to run the command in a new window.
func Darwin() Strategy {
	return Strategy{
		Platform: PlatformDarwin,
		Delay:    domain.DelayPOSIX,
		Failure:  domain.ErrLaunchFailed,
		Candidates: []Candidate{
			{
				Name: "osascript",
				Args: func(delayed string) []string {
					return []string{"-e", `tell application "Terminal" to do script "` + delayed + `"`}
				},
			},
		},
	}
}

// Windows starts a new console window that stays open after the command (cmd /k).
func Windows() Strategy {
	return Strategy{
		Platform: PlatformWindows,
		Delay:    domain.DelayWindows,
		Failure:  domain.ErrLaunchFailed,
		Candidates: []Candidate{
			{
				Name: "cmd",
				Args: func(delayed string) []string {
					return []string{"/C", "start", "cmd", "/k", delayed}
				},
			},
		},
	}
}

// Linux tries gnome-terminal, xterm and konsole in that order.
// The trailing bash keeps the window interactive once the command finishes.
func Linux() Strategy {
	return Strategy{
		Platform: PlatformLinux,
		Delay:    domain.DelayPOSIX,
		Suffix:   ";bash",
		Failure:  domain.ErrLinuxLaunchFailed,
		Fallback: true,
		Candidates: []Candidate{
			{Name: "gnome-terminal", Args: func(d string) []string { return []string{"--", "bash", "-c", d} }},
			{Name: "xterm", Args: func(d string) []string { return []string{"-e", d} }},
			{Name: "konsole", Args: func(d string) []string { return []string{"--noclose", "-e", d} }},
		},
	}
}

// Unsupported is used on platforms with no known terminal.
func Unsupported(platform string) Strategy {
	return Strategy{
		Platform: platform,
		Delay:    domain.DelayPOSIX,
		Failure:  domain.ErrNoCandidates,
	}
}
