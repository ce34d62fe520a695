// Package config loads calculation files in HCL: deck and hand sizes,
// simulation settings and combo blocks.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/firsthand/internal/combo"
)

// Calc is a complete calculation configuration.
type Calc struct {
	DeckSize    int          `hcl:"deck_size,optional"`
	HandSize    int          `hcl:"hand_size,optional"`
	Simulations int          `hcl:"simulations,optional"`
	Seed        *int64       `hcl:"seed,optional"`
	Combos      []ComboBlock `hcl:"combo,block"`
}

// ComboBlock defines one combo.
type ComboBlock struct {
	Name  string      `hcl:"name,label"`
	Cards []CardBlock `hcl:"card,block"`
}

// CardBlock defines one card slot within a combo.
type CardBlock struct {
	Name   string `hcl:"name,label"`
	ID     int    `hcl:"id,optional"`
	Copies int    `hcl:"copies"`
	Min    int    `hcl:"min"`
	Max    int    `hcl:"max"`
	Custom bool   `hcl:"custom,optional"`
}

// DefaultCalc returns the default calculation settings: a standard
// forty-card deck with an opening hand of five.
func DefaultCalc() *Calc {
	return &Calc{
		DeckSize:    40,
		HandSize:    5,
		Simulations: 100_000,
	}
}

// Load reads a calculation file. A missing file is an error here,
// unlike server configs, because a calculation without combos has
// nothing to compute.
func Load(filename string) (*Calc, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("calculation file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	cfg := DefaultCalc()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes calculation HCL from a byte slice, for tests and
// embedded configs.
func Parse(src []byte, filename string) (*Calc, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	cfg := DefaultCalc()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the size ranges the engine supports.
func (c *Calc) Validate() error {
	if c.DeckSize < 1 || c.DeckSize > 100 {
		return fmt.Errorf("deck_size %d outside [1,100]", c.DeckSize)
	}
	if c.HandSize < 1 || c.HandSize > 20 {
		return fmt.Errorf("hand_size %d outside [1,20]", c.HandSize)
	}
	if c.Simulations < 1 {
		return fmt.Errorf("simulations must be positive, got %d", c.Simulations)
	}
	return nil
}

// ToCombos converts the combo blocks to engine combos. Block order is
// preserved; ids are derived from position so share links stay stable.
func (c *Calc) ToCombos() []combo.Combo {
	out := make([]combo.Combo, 0, len(c.Combos))
	for i, block := range c.Combos {
		ec := combo.Combo{
			ID:   fmt.Sprintf("combo-%d", i+1),
			Name: block.Name,
		}
		for _, card := range block.Cards {
			ec.Cards = append(ec.Cards, combo.CardPredicate{
				Name:         card.Name,
				CatalogID:    card.ID,
				IsCustom:     card.Custom,
				CopiesInDeck: card.Copies,
				MinInHand:    card.Min,
				MaxInHand:    card.Max,
			})
		}
		out = append(out, ec)
	}
	return out
}
