package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors: slate neutrals with a blue accent.
var (
	ColorPrimary  = lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"} // Blue
	ColorAccent   = lipgloss.AdaptiveColor{Light: "#4338ca", Dark: "#a5b4fc"} // Indigo
	ColorSuccess  = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"} // Green
	ColorWarning  = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"} // Amber
	ColorDanger   = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"} // Red
	ColorMuted    = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#64748b"} // Slate 500
	ColorText     = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"} // Slate 900/100
	ColorSubtle   = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94a3b8"} // Slate 600/400
	ColorSurface  = lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#1e293b"} // Slate 200/800
	ColorBorder   = lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#334155"} // Slate 300/700
	ColorEmphasis = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
)

// Styles contains reusable lipgloss styles for the presentation.
type Styles struct {
	// Chrome
	Header  lipgloss.Style
	Counter lipgloss.Style
	Help    lipgloss.Style

	// Slide text
	Title     lipgloss.Style
	Hero      lipgloss.Style
	Subtitle  lipgloss.Style
	Accent    lipgloss.Style
	Paragraph lipgloss.Style
	Muted     lipgloss.Style
	Quote     lipgloss.Style
	Emphasis  lipgloss.Style

	// Status
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	// Containers
	Badge     lipgloss.Style
	Card      lipgloss.Style
	Panel     lipgloss.Style
	Highlight lipgloss.Style
	Icon      lipgloss.Style

	// Controls
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonPrimary  lipgloss.Style

	// Placeholder for slides that cannot be rendered.
	Placeholder lipgloss.Style
}

// DefaultStyles returns the default presentation styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true).
			PaddingLeft(2),

		Counter: lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(2),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		Hero: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		Accent: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Paragraph: lipgloss.NewStyle().
			Foreground(ColorText),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Quote: lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorText).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorPrimary).
			PaddingLeft(2),

		Emphasis: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorEmphasis),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Danger: lipgloss.NewStyle().
			Foreground(ColorDanger),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		Highlight: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		Icon: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorText).
			Background(ColorSurface),

		ButtonDisabled: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted).
			Faint(true),

		ButtonPrimary: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorEmphasis).
			Background(ColorPrimary),

		Placeholder: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
