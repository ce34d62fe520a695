package sim

import (
	"fmt"
	"strings"

	"github.com/lox/firsthand/internal/combo"
)

// shapeKey derives the cache key from the semantic shape of the query:
// per-card (copies,min,max) tuples joined with |, combos joined with
// ||, then the deck and hand sizes. Card names and ids are deliberately
// absent, so two combos that differ only in naming share a cache entry.
func shapeKey(combos []combo.Combo, deckSize, handSize int) string {
	var b strings.Builder
	for i, c := range combos {
		if i > 0 {
			b.WriteString("||")
		}
		for j, card := range c.Cards {
			if j > 0 {
				b.WriteString("|")
			}
			fmt.Fprintf(&b, "%d,%d,%d", card.CopiesInDeck, card.MinInHand, card.MaxInHand)
		}
	}
	fmt.Fprintf(&b, ";%d;%d", deckSize, handSize)
	return b.String()
}
