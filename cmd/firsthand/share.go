package main

import (
	"encoding/json"
	"os"

	"github.com/lox/firsthand/internal/share"
)

type ShareCmd struct {
	Decode ShareDecodeCmd `cmd:"" help:"Decode a share string"`
}

type ShareDecodeCmd struct {
	Value string `arg:"" help:"Share string to decode"`
}

func (c *ShareDecodeCmd) Run() error {
	calc, err := share.Decode(c.Value)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(calc)
}
