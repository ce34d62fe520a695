package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Calc      CalcCmd          `cmd:"" help:"Run a calculation from an HCL file"`
	Odds      OddsCmd          `cmd:"" help:"One-shot odds for a single card"`
	Hand      HandCmd          `cmd:"" help:"Print one sampled opening hand"`
	Deck      DeckCmd          `cmd:"" help:"Work with ydk deck files"`
	Handtraps HandTrapsCmd     `cmd:"" help:"List the hand traps in a deck"`
	Tui       TuiCmd           `cmd:"" help:"Interactive opening-hand viewer"`
	Share     ShareCmd         `cmd:"" help:"Work with share strings"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("firsthand"),
		kong.Description("Opening-hand probability calculator for the Yu-Gi-Oh! TCG"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
