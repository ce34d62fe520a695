// Package combo defines hand predicates: a combo is a list of per-card
// count constraints that must all hold over a drawn hand.
package combo

import (
	"fmt"
	"strings"
)

// CardPredicate is one card slot within a combo: a label plus the range
// of copies that must appear in the opening hand.
type CardPredicate struct {
	// Name is the canonical card name, or a user-chosen placeholder for
	// custom cards.
	Name string
	// CatalogID is the catalog id when known, 0 otherwise.
	CatalogID int
	// IsCustom marks a placeholder with no catalog entry.
	IsCustom bool

	CopiesInDeck int
	MinInHand    int
	MaxInHand    int
}

// LabelKey is the canonical identity used to collapse predicates that
// reference the same card, within and across combos.
func (p CardPredicate) LabelKey() string {
	return fmt.Sprintf("%s/%d", strings.ToLower(p.Name), p.CatalogID)
}

// Combo is a named conjunction of card predicates.
type Combo struct {
	ID    string
	Name  string
	Cards []CardPredicate
}

// Starter returns the combo's first card, which identifies it for the
// multi-starter metric.
func (c Combo) Starter() (CardPredicate, bool) {
	if len(c.Cards) == 0 {
		return CardPredicate{}, false
	}
	return c.Cards[0], true
}
