//go:build darwin

package terminal

// Native returns the strategy compiled for this platform.
func Native() Strategy {
	return Darwin()
}
