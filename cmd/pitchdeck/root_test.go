package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/pitchdeck/internal/adapters/logging"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_UseLine(t *testing.T) {
	assert.Equal(t, "pitchdeck", rootCmd.Use)
	assert.NotNil(t, rootCmd.RunE, "presenting is the default action")
}

func TestRootCommand_HasPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"config", "verbose", "log-file", "deck"} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, flags.Lookup(name))
		})
	}
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"present", "list", "validate", "export", "version"} {
		assert.True(t, names[name], "missing subcommand %s", name)
	}
}

func TestRootCommand_HasPresentFlags(t *testing.T) {
	for _, cmd := range []string{"no-animation", "no-mouse"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(cmd))
		assert.NotNil(t, presentCmd.Flags().Lookup(cmd))
	}
}

func TestFormatError(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	underlying := errors.New("yaml: line 3: mapping values are not allowed")
	err := config.NewDeckParseError("deck.yaml", underlying)

	msg := formatError(err)
	assert.Contains(t, msg, "failed to parse deck file (at deck.yaml)")
	assert.Contains(t, msg, "Suggestion:")
	assert.NotContains(t, msg, "Technical details")

	verbose = true
	assert.Contains(t, formatError(err), "Technical details: yaml: line 3")

	assert.Equal(t, "plain", formatError(errors.New("plain")))
}

func TestFormatError_List(t *testing.T) {
	list := config.NewErrorList()
	list.AddValidation("fps", "must be between 1 and 240", "")
	list.AddValidation("theme", "unknown theme", "")

	msg := formatError(list)

	assert.Contains(t, msg, "2 problems found:")
	assert.Contains(t, msg, "fps: must be between 1 and 240")
	assert.Contains(t, msg, "theme: unknown theme")
}

func TestPrintErrorTo(t *testing.T) {
	var buf bytes.Buffer
	printErrorTo(&buf, errors.New("boom"))

	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestLoadPreferences(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	prefs, err := loadPreferences()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPreferences(), prefs)

	cfgFile = filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("fps = 0\n"), 0o600))
	_, err = loadPreferences()
	require.Error(t, err)
}

func TestLoadDeck(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	d, err := loadDeck(config.DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, 11, d.Len())

	prefs := config.DefaultPreferences()
	prefs.Deck = writeDeck(t, unknownVariantDeck)
	d, err = loadDeck(prefs)
	require.NoError(t, err)
	assert.Equal(t, "Demo", d.Title())

	deckPath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err = loadDeck(prefs)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.NewUserError(config.ErrCodeDeckNotFound, ""))
}

func TestNewLogger(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	prefs := config.DefaultPreferences()

	logger, closeLogger, err := newLogger(prefs, &bytes.Buffer{}, true)
	require.NoError(t, err)
	assert.IsType(t, &logging.NopLogger{}, logger)
	require.NoError(t, closeLogger())

	var buf bytes.Buffer
	logger, closeLogger, err = newLogger(prefs, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, ports.LevelInfo, logger.Level())
	require.NoError(t, closeLogger())

	verbose = true
	logFile = filepath.Join(t.TempDir(), "deck.log")
	logger, closeLogger, err = newLogger(prefs, &buf, true)
	require.NoError(t, err)
	assert.Equal(t, ports.LevelDebug, logger.Level())
	logger.Info(t.Context(), "hello")
	require.NoError(t, closeLogger())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestPresentOptions(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	d, err := loadDeck(config.DefaultPreferences())
	require.NoError(t, err)

	opts := presentOptions(config.DefaultPreferences(), d, logging.NewNopLogger())
	assert.True(t, opts.Transition.Animate)
	assert.True(t, opts.Mouse)
	assert.Greater(t, opts.Transition.AngularFrequency, 0.0)

	noAnimation = true
	noMouse = true
	opts = presentOptions(config.DefaultPreferences(), d, logging.NewNopLogger())
	assert.False(t, opts.Transition.Animate)
	assert.False(t, opts.Mouse)

	resetFlags()
	prefs := config.DefaultPreferences()
	prefs.Animate = false
	opts = presentOptions(prefs, d, logging.NewNopLogger())
	assert.False(t, opts.Transition.Animate)
}
