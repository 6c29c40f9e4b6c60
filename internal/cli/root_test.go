package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns what it wrote to stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range NewRootCommand().Commands() {
		have[c.Name()] = true
	}

	for _, want := range []string{"fit", "pack", "predict"} {
		require.True(t, have[want], "missing subcommand %s", want)
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		require.NotEmpty(t, cmd.Short, "command %s missing Short", cmd.Name())
		require.NotEmpty(t, cmd.Long, "command %s missing Long", cmd.Name())
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(NewRootCommand())
}

func TestRoot_MissingConfig(t *testing.T) {
	_, _, err := run(t, "predict", "--config", "does-not-exist.yaml", "--a", "40", "--n", "2", "--distance", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestRoot_DebugDumpsSettings(t *testing.T) {
	stdout, stderr, err := run(t, "predict", "--debug", "--a", "40", "--n", "2", "--distance", "10")
	require.NoError(t, err)
	require.Equal(t, "rssi(10) = 20.0000\n", stdout)
	require.Contains(t, stderr, "distance")
	require.Contains(t, stderr, "debug")
}

func TestDumpSettings(t *testing.T) {
	var buf bytes.Buffer

	dumpSettings(&buf, map[string]any{"keep-going": true, "output": "json"})
	require.Contains(t, buf.String(), "keep-going")
	require.Contains(t, buf.String(), "json")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = newLogger(&buf, true)
	logger.Debug("verbose")
	require.NoError(t, logger.Sync())
	require.Contains(t, buf.String(), "verbose")
}
