package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gochair/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of c and its subcommands back to its default
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)
	t.Cleanup(func() { resetFlags(t, rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "gochair.yaml")
}

func TestObjectsListsChairInPickOrder(t *testing.T) {
	out, err := execute(t, "objects", "--config", missingConfig(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[1], "Ground")
	assert.Contains(t, lines[1], "no")
	assert.Contains(t, lines[2], "Seat")
	assert.Contains(t, lines[2], "#8b4513")
	assert.Contains(t, lines[7], "Leg 4")
}

func TestPickCenterHitsSeat(t *testing.T) {
	out, err := execute(t, "pick", "--config", missingConfig(t), "--x", "700", "--y", "450")
	require.NoError(t, err)
	assert.Equal(t, "Seat\n", out)
}

func TestPickSkyPrintsNone(t *testing.T) {
	out, err := execute(t, "pick", "--config", missingConfig(t), "--x", "0", "--y", "0")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestPickUsesViewportFlags(t *testing.T) {
	out, err := execute(t, "pick", "--config", missingConfig(t), "--width", "800", "--height", "600", "--x", "400", "--y", "300")
	require.NoError(t, err)
	assert.Equal(t, "Seat\n", out)
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -5\n"), 0644))

	_, err := execute(t, "objects", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)

	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "gochair "))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	path := missingConfig(t)
	_, err := execute(t, "pick", "--config", path, "--width", "800", "--height", "600", "--x", "1", "--y", "1")
	require.NoError(t, err)

	_, err = execute(t, "objects", "--config", path)
	require.NoError(t, err)

	cfg, err := loadConfig(objectsCmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Window, cfg.Window)
	assert.False(t, pickCmd.Flags().Changed("x"))
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := missingConfig(t)

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file must not be overwritten")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}
