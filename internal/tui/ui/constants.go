// Package ui provides shared styles, key bindings, and layout constants for
// the presentation TUI.
package ui

// Default screen dimensions used before the first WindowSizeMsg arrives.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Layout constants.
const (
	// HeaderHeight is the number of rows above the slide body.
	HeaderHeight = 2

	// FooterHeight is the number of rows below the slide body: the control
	// row and the progress bar.
	FooterHeight = 2

	// MinBodyHeight is the smallest slide body that is still rendered.
	MinBodyHeight = 3

	// ContentMaxWidth caps the width of slide layouts on wide terminals.
	ContentMaxWidth = 110

	// CardMinWidth is the narrowest card before cards stack vertically.
	CardMinWidth = 24

	// ButtonGap is the space between footer controls.
	ButtonGap = 1
)
