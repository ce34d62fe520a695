package main

import (
	"os"

	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/handtrap"
)

type HandTrapsCmd struct {
	File    string `arg:"" help:"Deck file (.ydk)"`
	Catalog string `required:"" help:"Card catalog JSON"`
	NoColor bool   `help:"Disable colored output"`
}

func (c *HandTrapsCmd) Run() error {
	if c.NoColor {
		display.DisableColor()
	}

	snapshot, err := loadDeckFile(c.File, c.Catalog)
	if err != nil {
		return err
	}

	display.HandTraps(os.Stdout, handtrap.UniqueHandTraps(snapshot.Main))
	return nil
}
