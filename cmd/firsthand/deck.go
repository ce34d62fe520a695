package main

import (
	"fmt"
	"os"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/fileutil"
)

type DeckCmd struct {
	Import DeckImportCmd `cmd:"" help:"Import a ydk file, reporting corrections"`
}

type DeckImportCmd struct {
	File    string `arg:"" help:"Deck file (.ydk)"`
	Catalog string `required:"" help:"Card catalog JSON"`
	Out     string `help:"Write a normalised ydk export to this path"`
	NoColor bool   `help:"Disable colored output"`
}

func (c *DeckImportCmd) Run() error {
	if c.NoColor {
		display.DisableColor()
	}

	cat, err := catalog.LoadFile(c.Catalog)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read deck: %w", err)
	}

	d, report, err := deck.ParseYDK(string(content), cat, nil)
	if err != nil {
		return err
	}
	display.ImportReport(os.Stdout, report)

	snapshot := d.Snapshot()
	fmt.Printf("main %d, extra %d, side %d\n",
		len(snapshot.Main), len(snapshot.Extra), len(snapshot.Side))

	if c.Out != "" {
		if err := fileutil.WriteFileAtomic(c.Out, []byte(deck.ExportYDK(snapshot)), 0o644); err != nil {
			return fmt.Errorf("write normalised deck: %w", err)
		}
		fmt.Printf("wrote %s\n", c.Out)
	}
	return nil
}
