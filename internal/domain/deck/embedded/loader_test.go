package embedded

import (
	"testing"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeck(t *testing.T) {
	t.Parallel()

	d, err := LoadDeck()
	require.NoError(t, err)

	assert.Equal(t, "Project Proposal", d.Title())
	assert.Equal(t, 11, d.Len())
	assert.Empty(t, d.Issues())
}

func TestLoadDeck_OneSlidePerVariantInOrder(t *testing.T) {
	t.Parallel()

	d, err := LoadDeck()
	require.NoError(t, err)

	variants := deck.Variants()
	require.Len(t, d.Slides(), len(variants))
	for i, s := range d.Slides() {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, variants[i], s.Variant, "slide %d", i)
		assert.Equal(t, s.Variant, s.Content.Variant())
	}
}

func TestLoadDeck_Content(t *testing.T) {
	t.Parallel()

	d, err := LoadDeck()
	require.NoError(t, err)

	timeline, ok := d.Slide(7)
	require.True(t, ok)
	tc, ok := timeline.Content.(deck.TimelineContent)
	require.True(t, ok)
	require.Len(t, tc.Phases, 4)
	assert.Equal(t, "1-4", tc.Phases[0].Weeks)
	assert.Equal(t, "Launch & Training", tc.Phases[3].Name)

	financial, _ := d.Slide(6)
	fc, ok := financial.Content.(deck.FinancialContent)
	require.True(t, ok)
	assert.Equal(t, "$350/year", fc.Current.Cost)
	assert.Equal(t, "$72/year", fc.Proposed.Cost)

	closing, _ := d.Slide(10)
	cc, ok := closing.Content.(deck.ClosingContent)
	require.True(t, ok)
	assert.Equal(t, deck.DefaultReplayAction, cc.Action)
}
