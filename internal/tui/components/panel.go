package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
)

// Panel is a bordered container with a title, used for cards and callouts.
type Panel struct {
	icon      string
	title     string
	content   string
	width     int
	hasBorder bool
	highlight bool
	styles    ui.Styles
}

// NewPanel creates a new panel with the given title.
func NewPanel(title string) Panel {
	return Panel{
		title:     title,
		width:     40,
		hasBorder: true,
		styles:    ui.DefaultStyles(),
	}
}

// Title returns the panel title.
func (p Panel) Title() string {
	return p.title
}

// Icon returns the glyph shown before the title.
func (p Panel) Icon() string {
	return p.icon
}

// Content returns the panel content.
func (p Panel) Content() string {
	return p.content
}

// Width returns the panel width.
func (p Panel) Width() int {
	return p.width
}

// HasBorder returns whether the panel has a border.
func (p Panel) HasBorder() bool {
	return p.hasBorder
}

// IsHighlighted returns whether the panel uses the accent border.
func (p Panel) IsHighlighted() bool {
	return p.highlight
}

// WithTitle returns the panel with a new title.
func (p Panel) WithTitle(title string) Panel {
	p.title = title
	return p
}

// WithIcon returns the panel with a glyph before the title.
func (p Panel) WithIcon(icon string) Panel {
	p.icon = icon
	return p
}

// WithContent returns the panel with new content.
func (p Panel) WithContent(content string) Panel {
	p.content = content
	return p
}

// WithWidth returns the panel with a new width.
func (p Panel) WithWidth(width int) Panel {
	p.width = width
	return p
}

// WithBorder returns the panel with border enabled/disabled.
func (p Panel) WithBorder(hasBorder bool) Panel {
	p.hasBorder = hasBorder
	return p
}

// WithHighlight returns the panel with the accent border enabled/disabled.
func (p Panel) WithHighlight(highlight bool) Panel {
	p.highlight = highlight
	return p
}

// WithStyles returns the panel with custom styles.
func (p Panel) WithStyles(styles ui.Styles) Panel {
	p.styles = styles
	return p
}

// View renders the panel. A bordered panel is exactly Width() columns wide.
func (p Panel) View() string {
	var panelStyle lipgloss.Style
	switch {
	case !p.hasBorder:
		panelStyle = lipgloss.NewStyle().Width(max(p.width, 1)).Padding(1, 2)
	case p.highlight:
		panelStyle = p.styles.Highlight.Width(max(p.width-2, 1))
	default:
		panelStyle = p.styles.Panel.Width(max(p.width-2, 1))
	}

	var b strings.Builder

	if p.icon != "" {
		b.WriteString(p.styles.Icon.Render(p.icon))
		b.WriteString(" ")
	}
	b.WriteString(p.styles.Emphasis.Render(p.title))

	if p.content != "" {
		b.WriteString("\n\n")
		b.WriteString(p.content)
	}

	return panelStyle.Render(b.String())
}

// SplitPanel displays two blocks side by side, or stacked when vertical.
type SplitPanel struct {
	left     string
	right    string
	ratio    float64
	vertical bool
	width    int
	gap      int
}

// NewSplitPanel creates a new split of two rendered blocks.
func NewSplitPanel(left, right string) SplitPanel {
	return SplitPanel{
		left:  left,
		right: right,
		ratio: 0.5,
		width: 80,
		gap:   ui.ButtonGap * 4,
	}
}

// Ratio returns the split ratio.
func (s SplitPanel) Ratio() float64 {
	return s.ratio
}

// IsVertical returns true if the split is vertical (top/bottom).
func (s SplitPanel) IsVertical() bool {
	return s.vertical
}

// Widths returns the column widths of a horizontal split.
func (s SplitPanel) Widths() (left, right int) {
	left = int(float64(s.width-s.gap) * s.ratio)
	right = s.width - s.gap - left
	return max(left, 0), max(right, 0)
}

// WithRatio sets the split ratio (0.0 to 1.0).
func (s SplitPanel) WithRatio(ratio float64) SplitPanel {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	s.ratio = ratio
	return s
}

// WithWidth sets the total width.
func (s SplitPanel) WithWidth(width int) SplitPanel {
	s.width = width
	return s
}

// Vertical makes the split vertical (top/bottom).
func (s SplitPanel) Vertical() SplitPanel {
	s.vertical = true
	return s
}

// Horizontal makes the split horizontal (left/right).
func (s SplitPanel) Horizontal() SplitPanel {
	s.vertical = false
	return s
}

// View renders the split panel.
func (s SplitPanel) View() string {
	if s.vertical {
		return lipgloss.JoinVertical(lipgloss.Left, s.left, "", s.right)
	}

	leftWidth, rightWidth := s.Widths()
	left := lipgloss.NewStyle().Width(leftWidth).Render(s.left)
	right := lipgloss.NewStyle().Width(rightWidth).Render(s.right)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", s.gap), right)
}
