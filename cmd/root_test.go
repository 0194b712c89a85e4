package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/chroma-logger/logger"
)

func plainEnv(t *testing.T, severity string) {
	t.Setenv("CHROMA_LOGGER_DISABLE_DATE_FORMAT", "true")
	t.Setenv("CHROMA_LOGGER_DISABLE_COLOR", "1")
	t.Setenv("CHROMA_LOGGER_DISABLE_SEVERITY_FORMAT", "")
	t.Setenv("CHROMA_LOGGER_SEVERITY", severity)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEmit_RoutesBySeverity(t *testing.T) {
	plainEnv(t, "")

	stdout, stderr, err := run(t, "emit", "warn", "disk at %s", "91%")
	require.NoError(t, err)
	assert.Equal(t, "WARN disk at 91%\n", stderr)
	assert.Empty(t, stdout)

	stdout, stderr, err = run(t, "emit", "success", "deployed %s in %ds", "api", "42")
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS deployed api in 42s\n", stdout)
	assert.Empty(t, stderr)
}

func TestEmit_DashedMessage(t *testing.T) {
	plainEnv(t, "")

	stdout, _, err := run(t, "emit", "info", "--not-a-flag", "-x")
	require.NoError(t, err)
	assert.Equal(t, "INFO --not-a-flag -x\n", stdout)
}

func TestEmit_HonoursThreshold(t *testing.T) {
	plainEnv(t, "error")

	stdout, stderr, err := run(t, "emit", "info", "dropped")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestEmit_UnknownSeverity(t *testing.T) {
	plainEnv(t, "")

	_, stderr, err := run(t, "emit", "notice", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, logger.ErrUnknownSeverity)
	assert.Contains(t, stderr, `severity "notice": unknown severity`)
}

func TestEmit_RequiresSeverity(t *testing.T) {
	plainEnv(t, "")

	_, _, err := run(t, "emit")
	assert.Error(t, err)
}

func TestColors_PrintsEverySeverity(t *testing.T) {
	// The demo ignores the threshold so every line shows.
	plainEnv(t, "disable")

	stdout, stderr, err := run(t, "colors", "--plain")
	require.NoError(t, err)

	outLines := strings.Split(strings.TrimSpace(stdout), "\n")
	errLines := strings.Split(strings.TrimSpace(stderr), "\n")
	assert.Len(t, outLines, 5)
	assert.Len(t, errLines, 3)
	assert.Contains(t, stderr, "FATAL fatal is level 6 on stderr")
	assert.Contains(t, stdout, "TRACE trace is level 1 on stdout")
	assert.NotContains(t, stdout+stderr, "\x1b[")
}

func TestColors_Colorized(t *testing.T) {
	stdout, _, err := run(t, "colors")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[36m")
	assert.Contains(t, stdout, "\x1b[0m")
}
