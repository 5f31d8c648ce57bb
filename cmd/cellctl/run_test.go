package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ucell/internal/script"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const passingScript = `
name: alias
steps:
  - create: v
    value: 5
  - dup: k
    from: v
  - write: k
    value: 30
  - expect: v
    value: 30
  - free: k
`

func TestRunCommand(t *testing.T) {
	resetFlags(t)
	path := writeScript(t, passingScript)

	out, err := captureOutput(t, func() error { return runScript(newRunCmd(), []string{path}) })
	require.NoError(t, err)
	require.Contains(t, out, `Script "alias" (5 steps)`)
	require.Contains(t, out, "OK: 5 steps, 1 allocs, 1 frees, 0 live")
}

func TestRunCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	t.Cleanup(func() { resetFlags(t) })
	path := writeScript(t, passingScript)

	out, err := captureOutput(t, func() error { return runScript(newRunCmd(), []string{path}) })
	require.NoError(t, err)
	assertJSON(t, out)
	require.Contains(t, out, `"name": "alias"`)
}

func TestRunCommand_Failure(t *testing.T) {
	resetFlags(t)
	path := writeScript(t, `
steps:
  - create: v
    value: 1
  - expect: v
    value: 2
`)

	_, err := captureOutput(t, func() error { return runScript(newRunCmd(), []string{path}) })
	require.ErrorIs(t, err, script.ErrMismatch)
}

func TestRunCommand_Quiet(t *testing.T) {
	resetFlags(t)
	quiet = true
	t.Cleanup(func() { resetFlags(t) })
	path := writeScript(t, passingScript)

	out, err := captureOutput(t, func() error { return runScript(newRunCmd(), []string{path}) })
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRunCommand_ThroughRoot(t *testing.T) {
	resetFlags(t)
	path := writeScript(t, passingScript)

	rootCmd.SetArgs([]string{"run", "--log-level", "error", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(t)
	})

	out, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	require.Contains(t, out, "OK: 5 steps")
}
