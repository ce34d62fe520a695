package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/config"
	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/hypergeo"
	"github.com/lox/firsthand/internal/share"
	"github.com/lox/firsthand/internal/sim"
)

type CalcCmd struct {
	Config      string `arg:"" help:"Calculation file (HCL)"`
	Deck        string `help:"Deck file (.ydk) for hand-trap analysis and deck-based sampling"`
	Catalog     string `help:"Card catalog JSON, required with --deck"`
	Seed        *int64 `help:"Random seed for reproducible results"`
	Simulations int    `help:"Override the simulation count"`
	Share       bool   `help:"Print the share string for this calculation"`
	JSON        bool   `help:"Machine-readable JSON output"`
	NoColor     bool   `help:"Disable colored output"`
	LogLevel    string `default:"info" help:"Log level (debug|info|warn|error)"`
}

type calcOutput struct {
	Result   sim.Result      `json:"result"`
	Formulas []formulaOutput `json:"formulas"`
	Share    string          `json:"share,omitempty"`
}

type formulaOutput struct {
	Combo   string           `json:"combo"`
	Formula hypergeo.Formula `json:"formula"`
}

func (c *CalcCmd) Run() error {
	if c.NoColor {
		display.DisableColor()
	}
	logger := createLogger(c.LogLevel)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Simulations > 0 {
		cfg.Simulations = c.Simulations
	}
	seed := c.Seed
	if seed == nil {
		seed = cfg.Seed
	}

	var snapshot *deck.Snapshot
	if c.Deck != "" {
		if snapshot, err = loadDeckFile(c.Deck, c.Catalog); err != nil {
			return err
		}
	}

	combos := cfg.ToCombos()
	engine := sim.New(sim.Config{
		Simulations: cfg.Simulations,
		Logger:      logger,
	})
	rng := newRNG(seed)

	// The Monte Carlo pass and the exact per-card formulas are
	// independent; run them side by side.
	var result sim.Result
	formulas := make([]hypergeo.Formula, len(combos))

	var g errgroup.Group
	g.Go(func() error {
		result = engine.CalculateAll(combos, cfg.DeckSize, cfg.HandSize, snapshot, rng)
		return nil
	})
	g.Go(func() error {
		for i, cb := range combos {
			formulas[i] = hypergeo.Build(cb, cfg.DeckSize, cfg.HandSize, 0)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Multi-card combos have no joint closed form; their overall value
	// comes from the simulation.
	for i, cb := range combos {
		if len(cb.Cards) > 1 {
			formulas[i].Overall = hypergeo.Round2(result.Individual[i].Probability)
		}
	}

	var shareStr string
	if c.Share {
		if shareStr, err = encodeShare(cfg, combos); err != nil {
			return err
		}
	}

	if c.JSON {
		out := calcOutput{Result: result, Share: shareStr}
		for i, cb := range combos {
			out.Formulas = append(out.Formulas, formulaOutput{Combo: cb.Name, Formula: formulas[i]})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	display.Result(os.Stdout, &result)
	for i, cb := range combos {
		fmt.Println()
		display.Formula(os.Stdout, cb.Name, formulas[i])
	}
	if c.Share {
		fmt.Printf("\nshare: %s\n", shareStr)
	}
	return nil
}

// encodeShare serializes the calculation for a share link.
func encodeShare(cfg *config.Calc, combos []combo.Combo) (string, error) {
	calc := share.Calc{
		DeckSize:             cfg.DeckSize,
		HandSize:             cfg.HandSize,
		TestHandFromDecklist: true,
	}
	for _, cb := range combos {
		sc := share.Combo{ID: cb.ID, Name: cb.Name}
		for _, card := range cb.Cards {
			sc.Cards = append(sc.Cards, share.Card{
				Name:         card.Name,
				CatalogID:    card.CatalogID,
				IsCustom:     card.IsCustom,
				CopiesInDeck: card.CopiesInDeck,
				MinInHand:    card.MinInHand,
				MaxInHand:    card.MaxInHand,
			})
		}
		calc.Combos = append(calc.Combos, sc)
	}
	return share.Encode(calc)
}
