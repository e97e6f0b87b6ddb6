package domain

import "errors"

// Domain errors.
var (
	ErrEmptyCommand      = errors.New("command cannot be empty")
	ErrLaunchFailed      = errors.New("Failed to launch terminal")          //nolint:staticcheck // surfaced verbatim to the host
	ErrLinuxLaunchFailed = errors.New("Failed to launch terminal on Linux") //nolint:staticcheck // surfaced verbatim to the host
	ErrNoCandidates      = errors.New("no terminal launcher available for this platform")
	ErrNonZeroExit       = errors.New("process exited with failure status")
)

// LaunchSucceeded is the message returned to the host when a terminal opened.
const LaunchSucceeded = "Terminal launched successfully"

// SpawnError reports that a program could not be started at all,
// for example because its binary is missing.
// Its message is the underlying error text so hosts see the OS reason.
type SpawnError struct {
	Err     error
	Program string
}

func (e *SpawnError) Error() string {
	return e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsSpawnError reports whether err (or anything it wraps) is a SpawnError.
func IsSpawnError(err error) bool {
	var se *SpawnError
	return errors.As(err, &se)
}
