package sim

import (
	rand "math/rand/v2"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/deck"
)

// ComboResult is the outcome for one combo, in input order.
type ComboResult struct {
	ComboID     string
	Name        string
	Probability float64
	Verdict     combo.Verdict
	Cards       []combo.CardPredicate
}

// Result is the full output of CalculateAll. Combined is present only
// with two or more combos; the multi sections only when their inputs
// support them.
type Result struct {
	DeckSize    int
	HandSize    int
	Simulations int

	Individual    []ComboResult
	Combined      *float64
	MultiStarter  *MultiStarterResult
	MultiHandTrap *MultiHandTrapResult
}

// CalculateAll runs every query for a combo set: per-combo rates, the
// any-combo rate when there is more than one combo, the multi-starter
// rate when there are two or more distinct starters, and the
// multi-hand-trap rate when a deck snapshot with two or more unique
// hand traps is supplied. Queries run in declared order against the
// one RNG, so a fixed seed fixes every number in the result.
func (e *Engine) CalculateAll(combos []combo.Combo, deckSize, handSize int, snapshot *deck.Snapshot, rng *rand.Rand) Result {
	result := Result{
		DeckSize:    deckSize,
		HandSize:    handSize,
		Simulations: e.simulations,
	}

	for _, c := range combos {
		result.Individual = append(result.Individual, ComboResult{
			ComboID:     c.ID,
			Name:        c.Name,
			Probability: e.SingleCombo(c, deckSize, handSize, rng),
			Verdict:     combo.Validate(c, deckSize, handSize),
			Cards:       c.Cards,
		})
	}

	if len(combos) > 1 {
		p := e.AnyCombo(combos, deckSize, handSize, rng)
		result.Combined = &p
	}

	result.MultiStarter = e.MultiStarter(combos, deckSize, handSize, rng)

	if snapshot != nil {
		result.MultiHandTrap = e.MultiHandTrap(*snapshot, handSize, rng)
	}

	return result
}
