package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/config"
	"github.com/lox/firsthand/internal/handsample"
	"github.com/lox/firsthand/internal/tui"
)

type TuiCmd struct {
	Config   string `arg:"" help:"Calculation file (HCL)"`
	Deck     string `help:"Sample from this deck file (.ydk) instead of the combo pool"`
	Catalog  string `help:"Card catalog JSON for card details"`
	Seed     *int64 `help:"Random seed for reproducible results"`
	LogLevel string `default:"warn" help:"Log level (debug|info|warn|error)"`
}

func (c *TuiCmd) Run() error {
	logger := createLogger(c.LogLevel)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	rng := newRNG(c.Seed)

	var dealer tui.Dealer
	if c.Deck != "" {
		snapshot, err := loadDeckFile(c.Deck, c.Catalog)
		if err != nil {
			return err
		}
		dealer = func() []handsample.Slot {
			return handsample.FromDeck(*snapshot, cfg.HandSize, rng)
		}
	} else {
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
		combos := cfg.ToCombos()
		dealer = func() []handsample.Slot {
			return handsample.FromCombos(combos, cfg.DeckSize, cfg.HandSize, lookup, rng)
		}
	}

	model := tui.NewModel(dealer, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
