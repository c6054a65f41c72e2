package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
)

// Progress displays the position within the deck as a bar and an "N / L"
// counter. It is derived from the navigation index on every render.
type Progress struct {
	index  int
	total  int
	width  int
	bar    progress.Model
	styles ui.Styles
}

// NewProgress creates a new progress component.
func NewProgress() Progress {
	return Progress{
		width: 40,
		bar: progress.New(
			progress.WithSolidFill(ui.ColorPrimary.Dark),
			progress.WithoutPercentage(),
		),
		styles: ui.DefaultStyles(),
	}
}

// Index returns the current slide index.
func (p Progress) Index() int {
	return p.index
}

// Total returns the number of slides.
func (p Progress) Total() int {
	return p.total
}

// Width returns the progress bar width.
func (p Progress) Width() int {
	return p.width
}

// WithPosition sets the current index and the number of slides.
func (p Progress) WithPosition(index, total int) Progress {
	if total < 0 {
		total = 0
	}
	if index < 0 {
		index = 0
	}
	if total > 0 && index > total-1 {
		index = total - 1
	}
	p.index = index
	p.total = total
	return p
}

// WithWidth sets the progress bar width.
func (p Progress) WithWidth(width int) Progress {
	if width < 0 {
		width = 0
	}
	p.width = width
	return p
}

// WithStyles sets the styles.
func (p Progress) WithStyles(styles ui.Styles) Progress {
	p.styles = styles
	return p
}

// Percent returns (index+1)/total, or 0 for an empty deck.
func (p Progress) Percent() float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.index+1) / float64(p.total)
}

// Counter returns the one-based position, e.g. "3 / 11".
func (p Progress) Counter() string {
	if p.total == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", p.index+1, p.total)
}

// View renders the progress bar.
func (p Progress) View() string {
	bar := p.bar
	bar.Width = p.width
	return bar.ViewAs(p.Percent())
}
