// Package handsample draws a single illustrative opening hand, used
// for previews rather than statistics. It samples with the same
// partial-shuffle discipline as the engine, so preview hands follow
// the same distribution the probabilities describe.
package handsample

import (
	rand "math/rand/v2"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/randutil"
)

// Slot is one card of a sampled hand: a named card, or a blank when
// the draw landed on deck padding.
type Slot struct {
	Name  string
	Card  *catalog.Card
	Blank bool
}

// Lookup resolves a combo label to a catalog card for display. A nil
// Lookup (or a miss) leaves the slot as a bare name.
type Lookup func(name string, catalogID int) *catalog.Card

// FromCombos samples a hand from the union of the combos' labels, each
// at the maximum copies any combo requests, padded with blanks to
// deckSize.
func FromCombos(combos []combo.Combo, deckSize, handSize int, lookup Lookup, rng *rand.Rand) []Slot {
	table := combo.NewLabelTable()
	ids := make(map[int]int) // label index → catalog id
	for _, c := range combos {
		for _, card := range c.Cards {
			i := table.Intern(card)
			if card.CatalogID != 0 {
				ids[i] = card.CatalogID
			}
		}
	}

	buf := fill(deckSize, table.Copies())
	randutil.PartialShuffle(buf, handSize, rng)

	hand := make([]Slot, 0, handSize)
	for _, label := range buf[:min(handSize, len(buf))] {
		if label < 0 {
			hand = append(hand, Slot{Blank: true})
			continue
		}
		slot := Slot{Name: table.Label(label)}
		if lookup != nil {
			slot.Card = lookup(slot.Name, ids[label])
		}
		hand = append(hand, slot)
	}
	return hand
}

// FromDeck samples a hand directly from a deck snapshot's Main zone.
func FromDeck(snapshot deck.Snapshot, handSize int, rng *rand.Rand) []Slot {
	buf := make([]int, len(snapshot.Main))
	for i := range buf {
		buf[i] = i
	}
	randutil.PartialShuffle(buf, handSize, rng)

	hand := make([]Slot, 0, handSize)
	for _, i := range buf[:min(handSize, len(buf))] {
		card := snapshot.Main[i]
		hand = append(hand, Slot{Name: card.Name, Card: card})
	}
	return hand
}

func fill(deckSize int, copies []int) []int {
	buf := make([]int, deckSize)
	i := 0
	for label, n := range copies {
		for c := 0; c < n && i < len(buf); c++ {
			buf[i] = label
			i++
		}
	}
	for ; i < len(buf); i++ {
		buf[i] = -1
	}
	return buf
}
