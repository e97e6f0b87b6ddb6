package terminal

import (
	"runtime"
	"testing"

	"github.com/runoshun/agentterm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_Delayed(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		strategy Strategy
	}{
		{"darwin", "sleep 2 && echo hi", Darwin()},
		{"windows", "timeout /t 2 && echo hi", Windows()},
		{"linux", "sleep 2 && echo hi;bash", Linux()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.strategy.Delayed("echo hi"))
		})
	}
}

func TestDarwin_Args(t *testing.T) {
	s := Darwin()
	require.Len(t, s.Candidates, 1)

	cmd := s.Candidates[0].Command(s.Delayed("claude"))
	assert.Equal(t, "osascript", cmd.Program)
	assert.Equal(t, []string{"-e", `tell application "Terminal" to do script "sleep 2 && claude"`}, cmd.Args)
	assert.False(t, s.Fallback)
	assert.ErrorIs(t, s.Failure, domain.ErrLaunchFailed)
}

func TestWindows_Args(t *testing.T) {
	s := Windows()
	require.Len(t, s.Candidates, 1)

	cmd := s.Candidates[0].Command(s.Delayed("echo hi"))
	assert.Equal(t, "cmd", cmd.Program)
	assert.Equal(t, []string{"/C", "start", "cmd", "/k", "timeout /t 2 && echo hi"}, cmd.Args)
	assert.False(t, s.Fallback)
	assert.ErrorIs(t, s.Failure, domain.ErrLaunchFailed)
}

func TestLinux_Args(t *testing.T) {
	s := Linux()
	delayed := s.Delayed("claude --resume")
	require.Equal(t, "sleep 2 && claude --resume;bash", delayed)

	expected := []struct {
		name string
		args []string
	}{
		{"gnome-terminal", []string{"--", "bash", "-c", delayed}},
		{"xterm", []string{"-e", delayed}},
		{"konsole", []string{"--noclose", "-e", delayed}},
	}

	require.Len(t, s.Candidates, len(expected))
	for i, want := range expected {
		cmd := s.Candidates[i].Command(delayed)
		assert.Equal(t, want.name, cmd.Program)
		assert.Equal(t, want.args, cmd.Args)
	}
	assert.True(t, s.Fallback)
	assert.ErrorIs(t, s.Failure, domain.ErrLinuxLaunchFailed)
}

func TestUnsupported(t *testing.T) {
	s := Unsupported("plan9")
	assert.Equal(t, "plan9", s.Platform)
	assert.Empty(t, s.Candidates)
	assert.ErrorIs(t, s.Failure, domain.ErrNoCandidates)
}

func TestNative(t *testing.T) {
	s := Native()
	switch runtime.GOOS {
	case PlatformDarwin, PlatformWindows, PlatformLinux:
		assert.Equal(t, runtime.GOOS, s.Platform)
		assert.NotEmpty(t, s.Candidates)
	default:
		assert.Empty(t, s.Candidates)
	}
}
