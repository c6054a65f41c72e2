// Package tui provides the terminal presentation of a deck.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/google/uuid"
)

// DeckOptions configures a presentation.
type DeckOptions struct {
	Deck       deck.Deck
	Transition TransitionConfig
	Mouse      bool
	AltScreen  bool
	Logger     ports.Logger

	// Input and Output replace the terminal when set.
	Input  io.Reader
	Output io.Writer
}

// NewDeckOptions creates default presentation options for d.
func NewDeckOptions(d deck.Deck) DeckOptions {
	return DeckOptions{
		Deck:       d,
		Transition: DefaultTransitionConfig(),
		Mouse:      true,
		AltScreen:  true,
	}
}

// WithAnimation enables or disables slide transitions.
func (o DeckOptions) WithAnimation(animate bool) DeckOptions {
	o.Transition.Animate = animate
	return o
}

// WithTransition sets the transition motion.
func (o DeckOptions) WithTransition(cfg TransitionConfig) DeckOptions {
	o.Transition = cfg
	return o
}

// WithMouse enables or disables mouse clicks on the footer controls.
func (o DeckOptions) WithMouse(mouse bool) DeckOptions {
	o.Mouse = mouse
	return o
}

// WithAltScreen enables or disables the alternate screen buffer.
func (o DeckOptions) WithAltScreen(alt bool) DeckOptions {
	o.AltScreen = alt
	return o
}

// WithLogger sets the logger.
func (o DeckOptions) WithLogger(logger ports.Logger) DeckOptions {
	o.Logger = logger
	return o
}

// WithIO replaces the terminal input and output.
func (o DeckOptions) WithIO(in io.Reader, out io.Writer) DeckOptions {
	o.Input = in
	o.Output = out
	return o
}

// DeckResult holds the outcome of a presentation.
type DeckResult struct {
	Session   string
	LastIndex int
	Visited   int
	Replays   int
}

// RunDeck presents a deck until the user quits.
func RunDeck(ctx context.Context, opts DeckOptions) (*DeckResult, error) {
	session := uuid.NewString()
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With(ports.F("session", session))
	}

	model, err := newDeckModel(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start presentation: %w", err)
	}
	defer model.transition.Stop()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	// Run the program
	p := tea.NewProgram(model, programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("presentation failed: %w", err)
	}

	// Extract result from final model
	m, ok := finalModel.(deckModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	result := m.result()
	result.Session = session
	m.logger.Info(ctx, "presentation finished",
		ports.F("last_index", result.LastIndex),
		ports.F("visited", result.Visited),
		ports.F("replays", result.Replays),
	)
	return result, nil
}
