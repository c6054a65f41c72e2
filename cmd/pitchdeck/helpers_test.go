package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns stdout and
// stderr. Global flags are reset first; tests using it must not run in
// parallel.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags() {
	cfgFile = ""
	verbose = false
	logFile = ""
	deckPath = ""
	noAnimation = false
	noMouse = false
	validateJSON = false
	validateStrict = false
	exportRender = false
	exportWidth = 80
	exportOutput = ""
}

func writeDeck(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const unknownVariantDeck = `title: Demo
slides:
  - id: 1
    variant: title
    title: Hello
  - id: 2
    variant: hologram
    title: Ghost
`
