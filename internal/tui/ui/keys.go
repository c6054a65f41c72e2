package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains the key bindings of the presentation.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Replay key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings: right arrow or space
// advances, left arrow retreats.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("→/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WithBoundaries returns a copy whose Prev, Next and Replay bindings are
// enabled only when the corresponding action is available.
func (k KeyMap) WithBoundaries(canRetreat, canAdvance, canReplay bool) KeyMap {
	k.Prev.SetEnabled(canRetreat)
	k.Next.SetEnabled(canAdvance)
	k.Replay.SetEnabled(canReplay)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Replay, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
