package combo

import "fmt"

// VerdictKind classifies the outcome of validating a combo.
type VerdictKind int

const (
	Valid VerdictKind = iota
	TotalCopiesExceedDeck
	MinExceedsCopies
	MinExceedsHand
	MaxLessThanMin
	ZeroCopiesRequireZeroMin
	SumOfMinsExceedsHand
	NoCards
)

// String returns the string representation of a verdict kind
func (k VerdictKind) String() string {
	switch k {
	case Valid:
		return "valid"
	case TotalCopiesExceedDeck:
		return "total copies exceed deck size"
	case MinExceedsCopies:
		return "minimum exceeds copies in deck"
	case MinExceedsHand:
		return "minimum exceeds hand size"
	case MaxLessThanMin:
		return "maximum less than minimum"
	case ZeroCopiesRequireZeroMin:
		return "zero copies require zero minimum"
	case SumOfMinsExceedsHand:
		return "sum of minimums exceeds hand size"
	case NoCards:
		return "combo has no cards"
	default:
		return "?"
	}
}

// Verdict is the result of validating a combo. Card names the offending
// predicate for per-card verdicts.
type Verdict struct {
	Kind VerdictKind
	Card string
}

// OK reports whether the combo passed validation.
func (v Verdict) OK() bool {
	return v.Kind == Valid
}

func (v Verdict) Error() string {
	if v.Card != "" {
		return fmt.Sprintf("combo invalid: %s (%s)", v.Kind, v.Card)
	}
	return fmt.Sprintf("combo invalid: %s", v.Kind)
}

// Validate checks a combo against the deck and hand sizes. Validation
// is pure and idempotent; an invalid combo scores probability 0 in the
// engine rather than failing a calculation.
func Validate(c Combo, deckSize, handSize int) Verdict {
	if len(c.Cards) == 0 {
		return Verdict{Kind: NoCards}
	}

	totalCopies := 0
	totalMins := 0
	for _, card := range c.Cards {
		if card.MaxInHand < card.MinInHand {
			return Verdict{Kind: MaxLessThanMin, Card: card.Name}
		}
		if card.CopiesInDeck == 0 && card.MinInHand > 0 {
			return Verdict{Kind: ZeroCopiesRequireZeroMin, Card: card.Name}
		}
		if card.MinInHand > card.CopiesInDeck {
			return Verdict{Kind: MinExceedsCopies, Card: card.Name}
		}
		if card.MinInHand > handSize {
			return Verdict{Kind: MinExceedsHand, Card: card.Name}
		}
		totalCopies += card.CopiesInDeck
		totalMins += card.MinInHand
	}

	if totalCopies > deckSize {
		return Verdict{Kind: TotalCopiesExceedDeck}
	}
	if totalMins > handSize {
		return Verdict{Kind: SumOfMinsExceedsHand}
	}
	return Verdict{Kind: Valid}
}
