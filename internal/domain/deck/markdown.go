package deck

import (
	"fmt"
	"strings"
)

// Markdown renders the deck as a Markdown document, one section per slide
// separated by horizontal rules.
func Markdown(d Deck) string {
	var b strings.Builder

	if d.Title() != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title())
	}

	for i, s := range d.Slides() {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		writeSlideMarkdown(&b, i, d.Len(), s)
	}

	return b.String()
}

func writeSlideMarkdown(b *strings.Builder, index, total int, s Slide) {
	heading := s.Title
	if heading == "" {
		heading = s.Variant.Label()
	}
	fmt.Fprintf(b, "## %d/%d · %s\n\n", index+1, total, heading)
	if s.Subtitle != "" {
		fmt.Fprintf(b, "_%s_\n\n", s.Subtitle)
	}

	content := s.Content
	if v, ok := VariantOf(content); !ok || v != s.Variant {
		content = nil
	}

	switch c := content.(type) {
	case TitleContent:
	case SplitContent:
		for _, p := range c.Points {
			fmt.Fprintf(b, "- %s\n", p.Text)
		}
		if c.Callout.Heading != "" {
			fmt.Fprintf(b, "\n> **%s** %s\n", c.Callout.Heading, c.Callout.Text)
		}
	case CriticalContent:
		if c.Badge != "" {
			fmt.Fprintf(b, "**%s**\n\n", strings.ToUpper(c.Badge))
		}
		if c.Headline != "" {
			fmt.Fprintf(b, "### %s\n\n", c.Headline)
		}
		if c.Result.Title != "" {
			fmt.Fprintf(b, "> %s  \n> `%s`  \n> %s\n\n", c.Result.Title, c.Result.URL, c.Result.Snippet)
		}
		fmt.Fprintf(b, "%s\n", c.Text)
	case CardsContent:
		for _, card := range c.Cards {
			fmt.Fprintf(b, "- **%s**: %s\n", card.Title, card.Text)
		}
	case DiagramContent:
		fmt.Fprintf(b, "**%s** ↔ %s\n\n%s\n", c.Hub, strings.Join(c.Satellites, " · "), c.Text)
	case TechContent:
		for _, t := range c.Stack {
			fmt.Fprintf(b, "- [x] `%s`\n", t)
		}
		if c.Argument != "" {
			fmt.Fprintf(b, "\n> %q\n", c.Argument)
		}
	case FinancialContent:
		b.WriteString("| | Current | Proposed |\n|---|---|---|\n")
		fmt.Fprintf(b, "| | %s | %s |\n", c.Current.Heading, c.Proposed.Heading)
		fmt.Fprintf(b, "| Cost | %s | %s |\n", c.Current.Cost, c.Proposed.Cost)
		fmt.Fprintf(b, "| Option | %s | %s |\n", c.Current.Label, c.Proposed.Label)
		fmt.Fprintf(b, "\n**%s**\n", c.Text)
	case TimelineContent:
		for i, p := range c.Phases {
			fmt.Fprintf(b, "%d. **Week %s**: %s\n", i+1, p.Weeks, p.Name)
		}
	case InvestmentContent:
		fmt.Fprintf(b, "**%s** (%s)\n\n", c.Amount, c.Note)
		for _, item := range c.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		if c.Narrative != "" {
			fmt.Fprintf(b, "\n_%s_\n", c.Narrative)
		}
	case RetainerContent:
		fmt.Fprintf(b, "**%s** %s\n\n%s\n", c.Price, c.Sub, c.Text)
	case ClosingContent:
	default:
		b.WriteString("_Slide content missing_\n")
	}

	if s.Footer != "" {
		fmt.Fprintf(b, "\n<sub>%s</sub>\n", s.Footer)
	}
}
