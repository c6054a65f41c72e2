// Package embedded provides the built-in proposal deck.
package embedded

import (
	_ "embed"
	"fmt"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
)

//go:embed proposal.yaml
var proposalYAML []byte

// LoadDeck parses the embedded proposal deck.
func LoadDeck() (deck.Deck, error) {
	d, err := deck.Parse(proposalYAML, "embedded:proposal.yaml")
	if err != nil {
		return deck.Deck{}, fmt.Errorf("failed to parse embedded deck: %w", err)
	}
	return d, nil
}
