package main

import (
	"fmt"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/felixgeelhaar/pitchdeck/internal/tui"
	"github.com/spf13/cobra"
)

var (
	noAnimation bool
	noMouse     bool
)

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck",
	Long: `Present opens the deck full screen.

Keys:
  → / space   next slide
  ←           previous slide
  r           replay from the first slide (on the closing slide)
  q / esc     quit

Examples:
  pitchdeck present
  pitchdeck present --deck proposal.yaml
  pitchdeck present --no-animation --log-file deck.log`,
	Args: cobra.NoArgs,
	RunE: runPresent,
}

func init() {
	registerPresentFlags(presentCmd)
	rootCmd.AddCommand(presentCmd)
}

func registerPresentFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noAnimation, "no-animation", false, "switch slides without transitions")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "ignore mouse clicks")
}

func runPresent(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPreferences()
	if err != nil {
		return err
	}
	applyTheme(prefs.Theme)

	d, err := loadDeck(prefs)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(prefs, cmd.ErrOrStderr(), true)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = closeLogger() }()

	result, err := tui.RunDeck(cmd.Context(), presentOptions(prefs, d, logger))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Viewed %d of %d slides", result.Visited, d.Len())
	if result.Replays > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), ", replayed %d times", result.Replays)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), ".")
	return nil
}

// presentOptions combines preferences and flags. Flags can only turn
// features off.
func presentOptions(prefs config.Preferences, d deck.Deck, logger ports.Logger) tui.DeckOptions {
	angular, damping := prefs.SpringParams()

	return tui.NewDeckOptions(d).
		WithTransition(tui.TransitionConfig{
			Animate:          prefs.Animate && !noAnimation,
			FrameInterval:    prefs.FrameInterval(),
			AngularFrequency: angular,
			DampingRatio:     damping,
		}).
		WithMouse(prefs.Mouse && !noMouse).
		WithLogger(logger)
}
