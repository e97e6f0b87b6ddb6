//go:build windows

package terminal

// Native returns the strategy compiled for this platform.
func Native() Strategy {
	return Windows()
}
