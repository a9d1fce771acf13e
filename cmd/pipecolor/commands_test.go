package pipecolor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pipecolor/pkg/errors"
)

const testRules = `
[[lines]]
pat = "(Error).*"
colors = ["Red", "LightRed"]
tokens = []

[[lines]]
pat = "(Info).*"
colors = ["Green", "LightGreen"]
tokens = []
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFilterFileAlwaysMode(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", testRules)
	logPath := writeFile(t, dir, "app.log", "Error: boom\nplain\n")

	out, err := execute(t, "", "-c", cfgPath, "--mode", "always", logPath)
	require.NoError(t, err)

	assert.Equal(t,
		"\x1b[38;5;1m\x1b[38;5;9mError\x1b[38;5;1m: boom\x1b[39m\nplain\n",
		out)
}

func TestFilterStdin(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", testRules)

	out, err := execute(t, "Info: up\n", "-c", cfgPath, "--mode", "always")
	require.NoError(t, err)

	assert.Equal(t, "\x1b[38;5;2m\x1b[38;5;10mInfo\x1b[38;5;2m: up\x1b[39m\n", out)
}

func TestFilterDisableModeIsIdentity(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", testRules)
	input := "Error: boom\nInfo: up\nplain\n"

	out, err := execute(t, input, "-c", cfgPath, "--mode", "disable")
	require.NoError(t, err)

	assert.Equal(t, input, out)
}

func TestFilterMultipleFilesResetFormat(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", `
[[formats]]
name = "alpha"
pat = "^== alpha"

[[formats.lines]]
pat = ".*"
colors = ["Red"]
tokens = []

[[formats]]
name = "beta"
pat = "^== beta"

[[formats.lines]]
pat = ".*"
colors = ["Blue"]
tokens = []
`)
	first := writeFile(t, dir, "first.log", "== alpha\ndata\n")
	second := writeFile(t, dir, "second.log", "data\n")

	out, err := execute(t, "", "-c", cfgPath, "--mode", "always", first, second)
	require.NoError(t, err)

	// First file activates alpha; the second starts over with no
	// active format, so its line passes through
	assert.Equal(t,
		"\x1b[38;5;1m== alpha\x1b[39m\n\x1b[38;5;1mdata\x1b[39m\ndata\n",
		out)
}

func TestFilterInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", `
[[lines]]
pat = ".*"
colors = ["NotAColor"]
tokens = []
`)

	_, err := execute(t, "", "-c", cfgPath, "--mode", "always")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrColorUnknown))
}

func TestFilterMissingConfigFileFails(t *testing.T) {
	_, err := execute(t, "", "-c", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestFilterMissingInputFileFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", testRules)

	_, err := execute(t, "", "-c", cfgPath, filepath.Join(dir, "nope.log"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestFilterUnknownModeFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "rules.toml", testRules)

	_, err := execute(t, "", "-c", cfgPath, "--mode", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pipecolor version")
}
