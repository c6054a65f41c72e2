package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/pitchdeck/internal/adapters/logging"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck/embedded"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	verbose  bool
	logFile  string
	deckPath string
)

var rootCmd = &cobra.Command{
	Use:   "pitchdeck",
	Short: "Present a pitch deck in the terminal",
	Long: `Pitchdeck presents a fixed sequence of slides in the terminal.

Navigate with the arrow keys or space, or click the buttons in the footer.
Without a subcommand the deck is presented right away.

Preferences are read from ~/.pitchdeck/config.toml when present.`,
	RunE:          runPresent,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "preferences file (default: ~/.pitchdeck/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "deck YAML file (default: built-in proposal)")

	registerPresentFlags(rootCmd)
	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

// loadPreferences reads the preferences file named by --config, or the
// default one.
func loadPreferences() (config.Preferences, error) {
	path := ports.ExpandPath(cfgFile)
	if path == "" {
		var err error
		path, err = config.DefaultPreferencesPath()
		if err != nil {
			return config.DefaultPreferences(), nil
		}
	}
	return config.LoadPreferences(path)
}

// loadDeck loads the deck named by --deck, then the preferences, falling
// back to the built-in deck.
func loadDeck(prefs config.Preferences) (deck.Deck, error) {
	path := deckPath
	if path == "" {
		path = prefs.Deck
	}
	if path == "" {
		return embedded.LoadDeck()
	}
	return deck.LoadFile(ports.ExpandPath(path))
}

// newLogger builds the logger for a command. The presentation owns the
// terminal, so it only logs when --log-file is given.
func newLogger(prefs config.Preferences, w io.Writer, interactive bool) (ports.Logger, func() error, error) {
	level := prefs.Level()
	if verbose {
		level = ports.LevelDebug
	}

	switch {
	case logFile != "":
		logger, err := logging.NewZapLogger(
			logging.WithFile(ports.ExpandPath(logFile)),
			logging.WithJSON(true),
			logging.WithLevel(level),
		)
		if err != nil {
			return nil, nil, err
		}
		return logger, logger.Close, nil
	case interactive:
		nop := logging.NewNopLogger()
		nop.SetLevel(level)
		return nop, func() error { return nil }, nil
	default:
		logger, err := logging.NewZapLogger(
			logging.WithWriter(w),
			logging.WithLevel(level),
		)
		if err != nil {
			return nil, nil, err
		}
		return logger, logger.Close, nil
	}
}

// applyTheme forces the background detection when the theme is not auto.
func applyTheme(theme config.Theme) {
	switch theme {
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var list *config.ErrorList
	if errors.As(err, &list) && list.Len() > 1 {
		msg := fmt.Sprintf("%d problems found:", list.Len())
		for _, e := range list.Errors() {
			msg += "\n  - " + formatError(e)
		}
		return msg
	}

	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	// Complete --config with TOML files
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	// Complete --deck with YAML files
	_ = rootCmd.RegisterFlagCompletionFunc("deck", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}
