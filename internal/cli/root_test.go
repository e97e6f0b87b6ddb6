package cli

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/runoshun/agentterm/internal/app"
	"github.com/runoshun/agentterm/internal/domain"
	"github.com/runoshun/agentterm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(launcher domain.TerminalLauncher, cfg *domain.Config) *app.Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return app.NewWithDeps(cfg, &testutil.MockConfigLoader{Config: cfg}, launcher, nil)
}

func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	names := make([]string, 0)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"launch", "serve", "terminals", "config"})
	assert.Equal(t, "test-version", root.Version)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	stdout, _, err := execute(t, nil, "--help")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "launch_agent_terminal")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown section: terminal"}
	c := newTestContainer(&testutil.MockTerminalLauncher{}, cfg)

	_, stderr, err := execute(t, c, "terminals")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown section: terminal")
}

func TestLaunchCommand_JoinsArgs(t *testing.T) {
	launcher := &testutil.MockTerminalLauncher{}
	c := newTestContainer(launcher, nil)

	stdout, _, err := execute(t, c, "launch", "--", "claude", "--resume", "&&", "echo", "done")

	require.NoError(t, err)
	assert.Contains(t, stdout, domain.LaunchSucceeded)
	assert.Equal(t, []string{"claude --resume && echo done"}, launcher.Commands)
}

func TestLaunchCommand_Failure(t *testing.T) {
	launcher := &testutil.MockTerminalLauncher{Err: domain.ErrLinuxLaunchFailed}
	c := newTestContainer(launcher, nil)

	stdout, _, err := execute(t, c, "launch", "claude")

	require.Error(t, err)
	assert.Equal(t, "Failed to launch terminal on Linux", err.Error())
	assert.Empty(t, stdout)
}

func TestLaunchCommand_RequiresArgs(t *testing.T) {
	c := newTestContainer(&testutil.MockTerminalLauncher{}, nil)

	_, _, err := execute(t, c, "launch")

	assert.Error(t, err)
}

func TestLaunchCommand_NilContainer(t *testing.T) {
	_, _, err := execute(t, nil, "launch", "claude")

	assert.Error(t, err)
}

func TestTerminalsCommand(t *testing.T) {
	stdout, _, err := execute(t, nil, "terminals")

	require.NoError(t, err)
	assert.Contains(t, stdout, runtime.GOOS)
	switch runtime.GOOS {
	case "linux":
		assert.Contains(t, stdout, "1. gnome-terminal -- bash -c")
		assert.Contains(t, stdout, "2. xterm -e")
		assert.Contains(t, stdout, "3. konsole --noclose -e")
		assert.Contains(t, stdout, "sleep 2 && <command>;bash")
	case "windows":
		assert.Contains(t, stdout, "timeout /t 2 && <command>")
	case "darwin":
		assert.Contains(t, stdout, "osascript -e")
	}
}

func TestFormatArgv(t *testing.T) {
	assert.Equal(t, `xterm -e "sleep 2 && ls;bash"`, formatArgv("xterm", []string{"-e", "sleep 2 && ls;bash"}))
	assert.Equal(t, "cmd /C start", formatArgv("cmd", []string{"/C", "start"}))
}

func TestConfigShowCommand(t *testing.T) {
	c := newTestContainer(&testutil.MockTerminalLauncher{}, nil)

	t.Run("toml", func(t *testing.T) {
		stdout, _, err := execute(t, c, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[Loaded from]")
		assert.Contains(t, stdout, "(no config directory)")
		assert.Contains(t, stdout, "[log]")
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := execute(t, c, "config", "show", "--yaml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "server:")
		assert.Contains(t, stdout, "name: agentterm")
	})
}
