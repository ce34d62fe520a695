package hypergeo

import (
	"fmt"

	"github.com/lox/firsthand/internal/combo"
)

// Line is one exact term of a formula: the probability of drawing
// exactly K copies of a card, with its rendered expression.
type Line struct {
	K          int
	Percent    float64
	Expression string
}

// Scenario groups the lines for one card of a combo.
type Scenario struct {
	CardName string
	Copies   int
	Min      int
	Max      int
	Lines    []Line
	Total    float64
}

// Formula is the structured display math for a combo. Overall is exact
// for single-card combos; for multi-card combos it carries the
// simulated value, since the joint closed form is out of scope.
type Formula struct {
	Scenarios    []Scenario
	Overall      float64
	OverallExact bool
}

// Build produces the display formula for a combo. monteCarlo supplies
// the overall probability for multi-card combos.
func Build(c combo.Combo, deckSize, handSize int, monteCarlo float64) Formula {
	f := Formula{Overall: Round2(monteCarlo)}

	for _, card := range c.Cards {
		sc := Scenario{
			CardName: card.Name,
			Copies:   card.CopiesInDeck,
			Min:      card.MinInHand,
			Max:      card.MaxInHand,
		}
		for k := card.MinInHand; k <= card.MaxInHand; k++ {
			p := Probability(deckSize, card.CopiesInDeck, handSize, k)
			sc.Lines = append(sc.Lines, Line{
				K:       k,
				Percent: Round2(p),
				Expression: fmt.Sprintf("C(%d,%d) × C(%d,%d) / C(%d,%d)",
					card.CopiesInDeck, k,
					deckSize-card.CopiesInDeck, handSize-k,
					deckSize, handSize),
			})
			sc.Total += p
		}
		sc.Total = Round2(sc.Total)
		f.Scenarios = append(f.Scenarios, sc)
	}

	if len(c.Cards) == 1 {
		f.Overall = f.Scenarios[0].Total
		f.OverallExact = true
	}
	return f
}
