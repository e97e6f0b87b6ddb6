//go:build linux

package terminal

// Native returns the strategy compiled for this platform.
func Native() Strategy {
	return Linux()
}
