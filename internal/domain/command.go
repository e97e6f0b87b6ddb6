package domain

import "time"

// StartupDelay is how long a freshly opened terminal waits before running the
// requested command, giving the emulator and any background agent time to start.
const StartupDelay = 2 * time.Second

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates an ExecCommand for program with args.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// String returns the program followed by its arguments, space separated.
// Used for logging only; the result is not shell-quoted.
func (c *ExecCommand) String() string {
	s := c.Program
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}
