package main

import (
	"fmt"
	"os"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/hypergeo"
	"github.com/lox/firsthand/internal/sim"
)

type OddsCmd struct {
	DeckSize    int    `default:"40" help:"Cards in the deck"`
	HandSize    int    `default:"5" help:"Cards in the opening hand"`
	Copies      int    `default:"3" help:"Copies of the card in the deck"`
	Min         int    `default:"1" help:"Minimum copies wanted in hand"`
	Max         int    `default:"-1" help:"Maximum copies wanted in hand (default: copies)"`
	Simulations int    `default:"100000" help:"Monte Carlo trial count"`
	Seed        *int64 `help:"Random seed for reproducible results"`
	NoColor     bool   `help:"Disable colored output"`
}

func (c *OddsCmd) Run() error {
	if c.NoColor {
		display.DisableColor()
	}
	if c.Max < 0 {
		c.Max = c.Copies
	}

	cb := combo.Combo{
		ID:   "odds",
		Name: fmt.Sprintf("%d-%d of %d copies", c.Min, c.Max, c.Copies),
		Cards: []combo.CardPredicate{{
			Name:         "card",
			CopiesInDeck: c.Copies,
			MinInHand:    c.Min,
			MaxInHand:    c.Max,
		}},
	}
	if v := combo.Validate(cb, c.DeckSize, c.HandSize); !v.OK() {
		return fmt.Errorf("%s", v.Error())
	}

	engine := sim.New(sim.Config{Simulations: c.Simulations, Logger: createLogger("warn")})
	simulated := engine.SingleCombo(cb, c.DeckSize, c.HandSize, newRNG(c.Seed))

	f := hypergeo.Build(cb, c.DeckSize, c.HandSize, simulated)
	display.Formula(os.Stdout, cb.Name, f)
	fmt.Printf("simulated %.2f%% over %d trials\n", simulated, c.Simulations)
	return nil
}
