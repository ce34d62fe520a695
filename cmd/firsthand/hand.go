package main

import (
	"os"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/config"
	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/handsample"
)

type HandCmd struct {
	Config  string `arg:"" help:"Calculation file (HCL)"`
	Deck    string `help:"Sample from this deck file (.ydk) instead of the combo pool"`
	Catalog string `help:"Card catalog JSON for card details"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	NoColor bool   `help:"Disable colored output"`
}

func (c *HandCmd) Run() error {
	if c.NoColor {
		display.DisableColor()
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	rng := newRNG(c.Seed)

	if c.Deck != "" {
		snapshot, err := loadDeckFile(c.Deck, c.Catalog)
		if err != nil {
			return err
		}
		display.Hand(os.Stdout, handsample.FromDeck(*snapshot, cfg.HandSize, rng))
		return nil
	}

	var lookup handsample.Lookup
	if c.Catalog != "" {
		cat, err := catalog.LoadFile(c.Catalog)
		if err != nil {
			return err
		}
		lookup = func(name string, id int) *catalog.Card {
			if card, ok := cat.LookupByID(id); ok {
				return card
			}
			if card, ok := cat.LookupByName(name); ok {
				return card
			}
			return nil
		}
	}

	display.Hand(os.Stdout, handsample.FromCombos(cfg.ToCombos(), cfg.DeckSize, cfg.HandSize, lookup, rng))
	return nil
}
