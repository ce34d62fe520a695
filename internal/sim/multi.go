package sim

import (
	rand "math/rand/v2"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/handtrap"
	"github.com/lox/firsthand/internal/randutil"
)

// MultiStarterResult reports the odds of opening with several distinct
// combo starters. ThreePlus is nil with fewer than three starters.
type MultiStarterResult struct {
	IndependentStarters int
	TwoPlus             float64
	ThreePlus           *float64
}

// MultiHandTrapResult reports the odds of opening with several distinct
// hand traps. Thresholds beyond the unique count are nil.
type MultiHandTrapResult struct {
	UniqueHandTraps int
	TwoPlus         float64
	ThreePlus       *float64
	FourPlus        *float64
}

// MultiStarter simulates the chance of drawing at least two (and three,
// when available) distinct starters. Starters are the unique first
// cards across combos; a label appearing first in several combos pools
// at the maximum copies requested. Returns nil with fewer than two
// distinct starters.
func (e *Engine) MultiStarter(combos []combo.Combo, deckSize, handSize int, rng *rand.Rand) *MultiStarterResult {
	table := combo.NewLabelTable()
	for _, c := range combos {
		starter, ok := c.Starter()
		if !ok {
			continue
		}
		table.Intern(starter)
	}
	if table.Len() < 2 {
		return nil
	}

	atLeast := e.runDistinct(table.Copies(), deckSize, handSize, rng)
	result := &MultiStarterResult{
		IndependentStarters: table.Len(),
		TwoPlus:             atLeast[2],
	}
	if table.Len() >= 3 {
		p := atLeast[3]
		result.ThreePlus = &p
	}
	return result
}

// MultiHandTrap simulates the chance of drawing at least N distinct
// hand traps from the deck's Main zone, for N up to four. Returns nil
// with fewer than two unique hand traps.
func (e *Engine) MultiHandTrap(snapshot deck.Snapshot, handSize int, rng *rand.Rand) *MultiHandTrapResult {
	traps := handtrap.UniqueHandTraps(snapshot.Main)
	if len(traps) < 2 {
		return nil
	}

	copies := make([]int, len(traps))
	for i, cc := range traps {
		copies[i] = cc.Copies
	}

	atLeast := e.runDistinct(copies, snapshot.MainSize(), handSize, rng)
	result := &MultiHandTrapResult{
		UniqueHandTraps: len(traps),
		TwoPlus:         atLeast[2],
	}
	if len(traps) >= 3 {
		p := atLeast[3]
		result.ThreePlus = &p
	}
	if len(traps) >= 4 {
		p := atLeast[4]
		result.FourPlus = &p
	}
	return result
}

// runDistinct tallies, per trial, how many distinct labels appear in
// the opening hand and returns P(distinct ≥ n) in percent for n up to
// four. One pass serves every threshold.
func (e *Engine) runDistinct(copies []int, deckSize, handSize int, rng *rand.Rand) [5]float64 {
	state := stateBuilding
	buf := buildDeckArray(make([]int, deckSize), copies)
	counts := make([]int, len(copies))

	var hits [5]int
	started := e.clock.Now()
	state = stateSampling
	for trial := 0; trial < e.simulations; trial++ {
		randutil.PartialShuffle(buf, handSize, rng)
		tallyHand(counts, buf, handSize)

		distinct := 0
		for _, n := range counts {
			if n > 0 {
				distinct++
			}
		}
		for n := 2; n <= 4 && n <= distinct; n++ {
			hits[n]++
		}
	}
	state = stateDone

	var atLeast [5]float64
	for n := 2; n <= 4; n++ {
		atLeast[n] = float64(hits[n]) / float64(e.simulations) * 100
	}
	e.logger.Debug("distinct-label simulation complete",
		"labels", len(copies),
		"trials", e.simulations,
		"state", state,
		"elapsed", e.clock.Since(started))
	return atLeast
}
