package slides

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck/embedded"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleContent has one payload per variant.
var sampleContent = map[deck.Variant]deck.Content{
	deck.VariantTitle: deck.TitleContent{},
	deck.VariantSplit: deck.SplitContent{
		Points:  []deck.Point{{Icon: "globe", Text: "Renting infrastructure"}},
		Callout: deck.Callout{Icon: "alert", Heading: "Vulnerability Detected", Text: "Platform Dependency Risk"},
	},
	deck.VariantCritical: deck.CriticalContent{
		Badge:    "Critical Liability",
		Headline: "The Broken Front Door",
		Text:     "The second result is a forum thread.",
		Result:   deck.SearchResult{Title: "Forum thread", URL: "www.example.com", Snippet: "Discussion"},
	},
	deck.VariantCards: deck.CardsContent{Cards: []deck.Card{
		{Icon: "shield", Title: "Risk Mitigation", Text: "SEO engineering."},
		{Icon: "server", Title: "Asset Ownership", Text: "OpEx to CapEx."},
	}},
	deck.VariantDiagram:   deck.DiagramContent{Hub: "Official Site", Satellites: []string{"LinkedIn", "Medium"}, Text: "Profiles."},
	deck.VariantTech:      deck.TechContent{Stack: []string{"Docker"}, Argument: "We own the code."},
	deck.VariantFinancial: deck.FinancialContent{Current: deck.CostColumn{Heading: "Rent", Cost: "$350/year"}, Proposed: deck.CostColumn{Heading: "Owned", Cost: "$72/year"}},
	deck.VariantTimeline:  deck.TimelineContent{Phases: []deck.Phase{{Weeks: "1-4", Name: "Design"}, {Weeks: "5-10", Name: "Build"}}},
	deck.VariantInvestment: deck.InvestmentContent{
		Amount: "P150,000", Note: "One-time", Items: []string{"UI/UX Design"}, Narrative: "Pays for itself.",
	},
	deck.VariantRetainer: deck.RetainerContent{Price: "P15,000 / Month", Sub: "(Optional)", Text: "Monthly audits."},
	deck.VariantClosing:  deck.ClosingContent{Action: "Replay Presentation"},
}

func newTestRenderer() Renderer {
	return NewRenderer(ui.DefaultStyles(), 100, 30)
}

func TestRender_EveryVariantHasTemplate(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	for _, v := range deck.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()

			content, ok := sampleContent[v]
			require.True(t, ok, "no sample content for variant %q", v)

			out := r.Render(deck.Slide{ID: 1, Variant: v, Title: "Heading " + v.Label(), Content: content})
			assert.NotContains(t, out, Placeholder)
			assert.Contains(t, out, "Heading")
		})
	}
}

func TestRender_EmbeddedDeck(t *testing.T) {
	t.Parallel()

	d, err := embedded.LoadDeck()
	require.NoError(t, err)

	for _, width := range []int{120, 80, 40, 12} {
		r := NewRenderer(ui.DefaultStyles(), width, 20)
		for _, s := range d.Slides() {
			require.True(t, Renderable(s), "slide %d", s.ID)

			out := r.Render(s)
			assert.NotContains(t, out, Placeholder, "slide %d at width %d", s.ID, width)
			assert.LessOrEqual(t, lipgloss.Width(out), width, "slide %d at width %d", s.ID, width)
			assert.LessOrEqual(t, lipgloss.Height(out), 20, "slide %d at width %d", s.ID, width)
		}
	}
}

func TestRender_Placeholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		slide deck.Slide
	}{
		{"unknown variant", deck.Slide{ID: 1, Variant: "hologram", Title: "Ghost"}},
		{"unknown variant with content", deck.Slide{ID: 1, Variant: "hologram", Content: deck.TitleContent{}}},
		{"empty variant", deck.Slide{ID: 1}},
		{"nil content", deck.Slide{ID: 1, Variant: deck.VariantCards}},
		{"mismatched content", deck.Slide{ID: 1, Variant: deck.VariantTimeline, Content: deck.RetainerContent{Price: "P1"}}},
		{"pointer content", deck.Slide{ID: 1, Variant: deck.VariantSplit, Content: &deck.SplitContent{}}},
		{"typed nil content", deck.Slide{ID: 1, Variant: deck.VariantCards, Content: (*deck.CardsContent)(nil)}},
		{"typed nil closing", deck.Slide{ID: 1, Variant: deck.VariantClosing, Content: (*deck.ClosingContent)(nil)}},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, Renderable(tt.slide))
			var out string
			assert.NotPanics(t, func() { out = r.Render(tt.slide) })
			assert.Contains(t, out, Placeholder)
		})
	}
}

func TestRender_Title(t *testing.T) {
	t.Parallel()

	out := newTestRenderer().Render(deck.Slide{
		ID:       1,
		Variant:  deck.VariantTitle,
		Title:    "Digital Reputation",
		Subtitle: "From rent to assets",
		Footer:   "Prepared by Ops",
		Content:  deck.TitleContent{},
	})

	assert.Contains(t, out, "Digital Reputation")
	assert.Contains(t, out, "From rent to assets")
	assert.Contains(t, out, "Prepared by Ops")
}

func TestRender_CardsStackOnNarrowBodies(t *testing.T) {
	t.Parallel()

	s := deck.Slide{ID: 1, Variant: deck.VariantCards, Title: "Pillars", Content: sampleContent[deck.VariantCards]}

	wide := NewRenderer(ui.DefaultStyles(), 100, 40).Render(s)
	narrow := NewRenderer(ui.DefaultStyles(), 40, 40).Render(s)

	assert.Greater(t, lipgloss.Height(narrow), lipgloss.Height(wide))
	assert.Contains(t, narrow, "Risk Mitigation")
	assert.Contains(t, narrow, "Asset Ownership")
}

func TestRender_ClosingDefaultsAction(t *testing.T) {
	t.Parallel()

	out := newTestRenderer().Render(deck.Slide{ID: 1, Variant: deck.VariantClosing, Title: "Thanks", Content: deck.ClosingContent{}})

	assert.Contains(t, out, deck.DefaultReplayAction)
}

func TestRender_TimelineKeepsOrder(t *testing.T) {
	t.Parallel()

	out := newTestRenderer().Render(deck.Slide{ID: 1, Variant: deck.VariantTimeline, Title: "Plan", Content: sampleContent[deck.VariantTimeline]})

	assert.Less(t, strings.Index(out, "Design"), strings.Index(out, "Build"))
}

func TestIcon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✓", Icon("check"))
	assert.Equal(t, "◆", Icon(" Shield "))
	assert.Equal(t, defaultIcon, Icon("unicorn"))
	assert.Equal(t, defaultIcon, Icon(""))
}
