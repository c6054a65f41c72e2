package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Project Proposal (11 slides)")
	assert.Contains(t, stdout, "VARIANT")
	assert.Contains(t, stdout, "Financial")
	assert.Contains(t, stdout, "Secure Our Future")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 14)
}

func TestListCommand_UnknownVariant(t *testing.T) {
	path := writeDeck(t, unknownVariantDeck)

	stdout, _, err := executeCommand(t, "list", "--deck", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Hologram")
	assert.Contains(t, stdout, "Ghost")
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ Project Proposal is valid (11 slides)")
}

func TestValidateCommand_Warnings(t *testing.T) {
	path := writeDeck(t, unknownVariantDeck)

	stdout, _, err := executeCommand(t, "validate", "--deck", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 warning(s)")
	assert.Contains(t, stdout, "slide 2 (id 2)")

	_, _, err = executeCommand(t, "validate", "--deck", path, "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.NewUserError(config.ErrCodeValidationFailed, ""))
	assert.Contains(t, formatError(err), "Suggestion: Use one of the known variants")
}

func TestValidateCommand_JSON(t *testing.T) {
	path := writeDeck(t, unknownVariantDeck)

	stdout, _, err := executeCommand(t, "validate", "--deck", path, "--json", "--strict")
	require.Error(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, 2, report.Slides)
	assert.Len(t, report.Warnings, 1)
}

func TestValidateCommand_LoadError(t *testing.T) {
	path := writeDeck(t, "title: Empty\nslides: []\n")

	stdout, _, err := executeCommand(t, "validate", "--deck", path, "--json")
	require.Error(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.Error)
}

func TestValidateCommand_MissingDeck(t *testing.T) {
	_, _, err := executeCommand(t, "validate", "--deck", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	assert.Contains(t, formatError(err), "deck file not found")
}

func TestExportCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "export")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "# Project Proposal"))
	assert.Contains(t, stdout, "Implementation Timeline (16 Weeks)")
	assert.Equal(t, 10, strings.Count(stdout, "\n---\n"))
}

func TestExportCommand_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handout.md")

	stdout, _, err := executeCommand(t, "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 11 slides")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Secure Our Future")
}

func TestExportDeck_Render(t *testing.T) {
	d, err := embedded.LoadDeck()
	require.NoError(t, err)

	out, err := exportDeck(d, true, 60)
	require.NoError(t, err)

	assert.Contains(t, out, "Project Proposal")
	assert.NotEqual(t, deck.Markdown(d), out)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "pitchdeck dev")
	assert.Contains(t, stdout, "commit: none")
}
