package slides

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/components"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
	"github.com/muesli/reflow/wordwrap"
)

// splitMinWidth is the narrowest body that still fits two columns.
const splitMinWidth = 2*ui.CardMinWidth + 4

func wrap(text string, width int) string {
	return wordwrap.String(text, max(width, 1))
}

// heading renders the title and optional subtitle shared by content slides.
func (r Renderer) heading(s deck.Slide) string {
	cw := r.contentWidth()
	parts := []string{r.styles.Title.Render(wrap(s.Title, cw))}
	if s.Subtitle != "" {
		parts = append(parts, r.styles.Accent.Render(wrap(s.Subtitle, cw)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// page stacks the heading above a body.
func (r Renderer) page(s deck.Slide, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, r.heading(s), "", body)
}

// columns places two blocks side by side, or stacks them on narrow bodies.
func (r Renderer) columns(left, right string, ratio float64) string {
	split := components.NewSplitPanel(left, right).WithWidth(r.contentWidth()).WithRatio(ratio)
	if r.contentWidth() < splitMinWidth {
		split = split.Vertical()
	}
	return split.View()
}

// columnWidths mirrors columns for callers that wrap text before joining.
func (r Renderer) columnWidths(ratio float64) (int, int) {
	cw := r.contentWidth()
	if cw < splitMinWidth {
		return cw, cw
	}
	return components.NewSplitPanel("", "").WithWidth(cw).WithRatio(ratio).Widths()
}

func (r Renderer) title(s deck.Slide) string {
	cw := r.contentWidth()
	parts := []string{r.styles.Hero.Render(wrap(s.Title, cw))}
	if s.Subtitle != "" {
		parts = append(parts, "", r.styles.Subtitle.Render(wrap(s.Subtitle, cw)))
	}
	if s.Footer != "" {
		parts = append(parts, "", "", r.styles.Muted.Render(wrap(s.Footer, cw)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (r Renderer) split(s deck.Slide, c deck.SplitContent) string {
	lw, rw := r.columnWidths(0.55)

	points := make([]string, 0, len(c.Points)*2)
	for i, p := range c.Points {
		if i > 0 {
			points = append(points, "")
		}
		icon := r.styles.Icon.Render(Icon(p.Icon))
		points = append(points, lipgloss.JoinHorizontal(lipgloss.Top,
			icon, "  ", r.styles.Paragraph.Render(wrap(p.Text, lw-3))))
	}

	callout := components.NewPanel(c.Callout.Heading).
		WithStyles(r.styles).
		WithIcon(r.styles.Danger.Render(Icon(c.Callout.Icon))).
		WithContent(r.styles.Danger.Render(wrap(c.Callout.Text, rw-6))).
		WithWidth(rw).
		View()

	return r.page(s, r.columns(lipgloss.JoinVertical(lipgloss.Left, points...), callout, 0.55))
}

func (r Renderer) critical(s deck.Slide, c deck.CriticalContent) string {
	lw, rw := r.columnWidths(0.5)

	left := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Badge.Render(c.Badge),
		"",
		r.styles.Hero.Render(wrap(c.Headline, lw)),
		"",
		r.styles.Paragraph.Render(wrap(c.Text, lw)),
	)

	result := components.NewPanel(r.styles.Accent.Render(Icon("search")) + " search results").
		WithStyles(r.styles).
		WithContent(lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Muted.Render(wrap(c.Result.URL, rw-6)),
			r.styles.Accent.Render(wrap(c.Result.Title, rw-6)),
			r.styles.Muted.Render(wrap(c.Result.Snippet, rw-6)),
		)).
		WithWidth(rw).
		View()

	return r.page(s, r.columns(left, result, 0.5))
}

func (r Renderer) cards(s deck.Slide, c deck.CardsContent) string {
	cw := r.contentWidth()
	n := len(c.Cards)
	gap := strings.Repeat(" ", 2)

	cardWidth := cw
	horizontal := n > 0 && (cw-2*(n-1))/n >= ui.CardMinWidth
	if horizontal {
		cardWidth = (cw - 2*(n-1)) / n
	}

	views := make([]string, 0, 2*n)
	for i, card := range c.Cards {
		if i > 0 && horizontal {
			views = append(views, gap)
		}
		views = append(views, components.NewPanel(card.Title).
			WithStyles(r.styles).
			WithIcon(Icon(card.Icon)).
			WithContent(r.styles.Muted.Render(wrap(card.Text, cardWidth-6))).
			WithWidth(cardWidth).
			View())
	}

	var body string
	if horizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return r.page(s, body)
}

func (r Renderer) diagram(s deck.Slide, c deck.DiagramContent) string {
	cw := r.contentWidth()

	hub := r.styles.Highlight.Padding(0, 2).Render(c.Hub)

	nodes := make([]string, 0, 2*len(c.Satellites))
	for i, sat := range c.Satellites {
		if i > 0 {
			nodes = append(nodes, "  ")
		}
		nodes = append(nodes, r.styles.Card.Padding(0, 1).Render(sat))
	}
	satellites := lipgloss.JoinHorizontal(lipgloss.Top, nodes...)
	if lipgloss.Width(satellites) > cw {
		satellites = lipgloss.JoinVertical(lipgloss.Center, nodes...)
	}

	span := max(min(lipgloss.Width(satellites), cw)-4, 1)
	connector := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Accent.Render("│"),
		r.styles.Accent.Render(strings.Repeat("─", span)),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, hub, connector, satellites)
	if c.Text != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", r.styles.Paragraph.Render(wrap(c.Text, cw)))
	}
	return r.page(s, lipgloss.PlaceHorizontal(cw, lipgloss.Center, body))
}

func (r Renderer) tech(s deck.Slide, c deck.TechContent) string {
	lw, _ := r.columnWidths(0.6)

	argument := r.styles.Quote.Render(wrap(c.Argument, lw-3))

	stack := make([]string, 0, len(c.Stack))
	for _, item := range c.Stack {
		stack = append(stack, r.styles.Success.Render(Icon("check"))+" "+r.styles.Emphasis.Render(item))
	}

	return r.page(s, r.columns(argument, lipgloss.JoinVertical(lipgloss.Left, stack...), 0.6))
}

func (r Renderer) costColumn(col deck.CostColumn, width int, owned bool) string {
	cost := r.styles.Danger
	if owned {
		cost = r.styles.Success
	}
	return components.NewPanel(col.Heading).
		WithStyles(r.styles).
		WithHighlight(owned).
		WithContent(lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Muted.Render(col.Label),
			cost.Bold(true).Render(col.Cost),
			r.styles.Subtitle.Render(col.Kind),
		)).
		WithWidth(width).
		View()
}

func (r Renderer) financial(s deck.Slide, c deck.FinancialContent) string {
	lw, rw := r.columnWidths(0.5)

	body := r.columns(r.costColumn(c.Current, lw, false), r.costColumn(c.Proposed, rw, true), 0.5)
	if c.Text != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "",
			r.styles.Success.Bold(true).Render(wrap(c.Text, r.contentWidth())))
	}
	return r.page(s, body)
}

func (r Renderer) timeline(s deck.Slide, c deck.TimelineContent) string {
	cw := r.contentWidth()
	n := len(c.Phases)
	if n == 0 {
		return r.page(s, "")
	}

	colWidth := cw / n
	if colWidth < 14 {
		rows := make([]string, 0, n)
		for _, p := range c.Phases {
			rows = append(rows, fmt.Sprintf("%s %s  %s",
				r.styles.Accent.Render("●"),
				r.styles.Muted.Render("Weeks "+p.Weeks),
				r.styles.Paragraph.Render(p.Name)))
		}
		return r.page(s, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	cols := make([]string, 0, n)
	for i, p := range c.Phases {
		track := "●"
		if i < n-1 {
			track += strings.Repeat("─", colWidth-1)
		}
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Accent.Render(track),
			r.styles.Muted.Render("Weeks "+p.Weeks),
			r.styles.Paragraph.Bold(true).Render(wrap(p.Name, colWidth-2)),
		)))
	}
	return r.page(s, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

func (r Renderer) investment(s deck.Slide, c deck.InvestmentContent) string {
	lw, rw := r.columnWidths(0.55)

	left := []string{r.styles.Hero.Render(c.Amount)}
	if c.Note != "" {
		left = append(left, r.styles.Muted.Render(c.Note))
	}
	if c.Narrative != "" {
		left = append(left, "", r.styles.Quote.Render(wrap(c.Narrative, lw-3)))
	}

	items := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, r.styles.Success.Render(Icon("check"))+" "+wrap(item, rw-8))
	}
	includes := components.NewPanel("Includes").
		WithStyles(r.styles).
		WithContent(lipgloss.JoinVertical(lipgloss.Left, items...)).
		WithWidth(rw).
		View()

	return r.page(s, r.columns(lipgloss.JoinVertical(lipgloss.Left, left...), includes, 0.55))
}

func (r Renderer) retainer(s deck.Slide, c deck.RetainerContent) string {
	cw := r.contentWidth()

	parts := []string{
		r.styles.Icon.Render(Icon("shield")),
		"",
		r.styles.Hero.Render(c.Price),
	}
	if c.Sub != "" {
		parts = append(parts, r.styles.Muted.Render(c.Sub))
	}
	if c.Text != "" {
		parts = append(parts, "", r.styles.Paragraph.Render(wrap(c.Text, min(cw, 72))))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return r.page(s, lipgloss.PlaceHorizontal(cw, lipgloss.Center, body))
}

func (r Renderer) closing(s deck.Slide, c deck.ClosingContent) string {
	cw := r.contentWidth()

	action := c.Action
	if action == "" {
		action = deck.DefaultReplayAction
	}

	parts := []string{r.styles.Hero.Render(wrap(s.Title, cw))}
	if s.Subtitle != "" {
		parts = append(parts, "", r.styles.Subtitle.Render(wrap(s.Subtitle, cw)))
	}
	parts = append(parts, "", "",
		r.styles.ButtonPrimary.Render("↺ "+action),
		r.styles.Muted.Render("press r"),
	)
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
