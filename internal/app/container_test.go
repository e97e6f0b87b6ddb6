package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/agentterm/internal/domain"
	"github.com/runoshun/agentterm/internal/infra/config"
	"github.com/runoshun/agentterm/internal/infra/terminal"
	"github.com/runoshun/agentterm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLoader(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	content := "[log]\nlevel = \"debug\"\ndir = '" + logDir + "'\n\n[server]\nname = \"shell\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))

	var buf bytes.Buffer
	c, err := NewWithLoader(config.NewLoaderWithGlobalDir(dir), &buf)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, "shell", c.AppConfig.Server.Name)
	assert.NotNil(t, c.Executor)
	launcher, ok := c.Launcher.(*terminal.Launcher)
	require.True(t, ok)
	assert.Equal(t, terminal.Native().Platform, launcher.Strategy().Platform)

	c.Logger.Debug("test", "container ready")
	assert.Contains(t, buf.String(), "container ready")
	_, err = os.Stat(domain.LogPath(logDir))
	assert.NoError(t, err)
}

func TestNewWithLoader_LoadError(t *testing.T) {
	_, err := NewWithLoader(&testutil.MockConfigLoader{LoadErr: errors.New("broken")}, nil)
	assert.EqualError(t, err, "broken")
}

func TestContainer_Factories(t *testing.T) {
	c := NewWithDeps(domain.NewDefaultConfig(), &testutil.MockConfigLoader{}, &testutil.MockTerminalLauncher{}, nil)

	assert.NotNil(t, c.LaunchTerminalUseCase())
	assert.NotNil(t, c.ShowConfigUseCase())
	assert.NotNil(t, c.MCPServer("v0.0.0-test"))
	assert.NoError(t, c.Close())
}
