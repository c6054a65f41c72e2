// Package slides renders deck slides to terminal layouts.
package slides

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
	"github.com/muesli/reflow/truncate"
)

// Placeholder is shown for slides whose variant has no template or whose
// content does not match the variant.
const Placeholder = "Slide content missing"

// Renderer turns a slide into a string block of at most Width columns and
// Height rows. It holds no state between calls.
type Renderer struct {
	styles ui.Styles
	width  int
	height int
}

// NewRenderer creates a renderer for the given body size.
func NewRenderer(styles ui.Styles, width, height int) Renderer {
	return Renderer{styles: styles}.WithSize(width, height)
}

// WithSize returns the renderer with a new body size.
func (r Renderer) WithSize(width, height int) Renderer {
	r.width = max(width, 1)
	r.height = max(height, 1)
	return r
}

// Width returns the body width.
func (r Renderer) Width() int {
	return r.width
}

// Height returns the body height.
func (r Renderer) Height() int {
	return r.height
}

// Renderable reports whether s has a template and a payload of the matching
// type. Render shows the placeholder for any slide where this is false.
func Renderable(s deck.Slide) bool {
	v, ok := deck.VariantOf(s.Content)
	return ok && s.Variant.IsKnown() && v == s.Variant
}

// Render lays out a slide. Unknown variants and missing or mismatched
// payloads render the placeholder.
func (r Renderer) Render(s deck.Slide) string {
	if !Renderable(s) {
		return r.placeholder()
	}

	var out string
	switch c := s.Content.(type) {
	case deck.TitleContent:
		out = r.title(s)
	case deck.SplitContent:
		out = r.split(s, c)
	case deck.CriticalContent:
		out = r.critical(s, c)
	case deck.CardsContent:
		out = r.cards(s, c)
	case deck.DiagramContent:
		out = r.diagram(s, c)
	case deck.TechContent:
		out = r.tech(s, c)
	case deck.FinancialContent:
		out = r.financial(s, c)
	case deck.TimelineContent:
		out = r.timeline(s, c)
	case deck.InvestmentContent:
		out = r.investment(s, c)
	case deck.RetainerContent:
		out = r.retainer(s, c)
	case deck.ClosingContent:
		out = r.closing(s, c)
	default:
		return r.placeholder()
	}

	return r.clip(out)
}

func (r Renderer) placeholder() string {
	return lipgloss.Place(r.width, min(r.height, 3), lipgloss.Center, lipgloss.Center,
		r.styles.Placeholder.Render(Placeholder))
}

// contentWidth is the usable width of a slide body.
func (r Renderer) contentWidth() int {
	return max(min(r.width-4, ui.ContentMaxWidth), 1)
}

// clip cuts the block to the renderer's bounds.
func (r Renderer) clip(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) > r.height {
		lines = lines[:r.height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > r.width {
			lines[i] = truncate.String(line, uint(r.width))
		}
	}
	return strings.Join(lines, "\n")
}
