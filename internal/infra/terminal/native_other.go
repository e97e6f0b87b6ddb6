//go:build !darwin && !windows && !linux

package terminal

import "runtime"

// Native returns the strategy compiled for this platform.
func Native() Strategy {
	return Unsupported(runtime.GOOS)
}
