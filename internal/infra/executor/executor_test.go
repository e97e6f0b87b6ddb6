package executor

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/runoshun/agentterm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()
	ctx := context.Background()

	t.Run("succeeds for zero exit", func(t *testing.T) {
		err := client.Run(ctx, domain.NewCommand("sh", []string{"-c", "exit 0"}, ""))
		require.NoError(t, err)
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		err := client.Run(ctx, domain.NewCommand("sh", []string{"-c", `test "$(pwd -P)" = "$(cd "$0" && pwd -P)"`, dir}, dir))
		require.NoError(t, err)
	})

	t.Run("non-zero exit wraps ErrNonZeroExit", func(t *testing.T) {
		err := client.Run(ctx, domain.NewCommand("sh", []string{"-c", "exit 3"}, ""))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNonZeroExit)
		assert.False(t, domain.IsSpawnError(err))
		assert.Contains(t, err.Error(), "exit status 3")
	})

	t.Run("missing binary is a spawn error", func(t *testing.T) {
		err := client.Run(ctx, domain.NewCommand("nonexistent-command-xyz", nil, ""))
		require.Error(t, err)
		assert.True(t, domain.IsSpawnError(err))
		assert.ErrorIs(t, err, exec.ErrNotFound)
		assert.Contains(t, err.Error(), "nonexistent-command-xyz")
	})

	t.Run("canceled context does not spawn", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		err := client.Run(canceled, domain.NewCommand("sh", []string{"-c", "exit 0"}, ""))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}
