package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/display"
	"github.com/lox/firsthand/internal/randutil"
)

// createLogger builds the CLI logger. Levels follow the usual
// debug|info|warn|error ladder; unknown levels fall back to info.
func createLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// newRNG returns a seeded RNG when a seed was given, an OS-seeded one
// otherwise.
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return randutil.New(*seed)
	}
	return randutil.NewOS()
}

// loadDeckFile parses a ydk file against a catalog and returns its
// snapshot. Import problems are rendered to stderr but do not fail the
// load; the caller gets whatever could be imported.
func loadDeckFile(path, catalogPath string) (*deck.Snapshot, error) {
	if catalogPath == "" {
		return nil, fmt.Errorf("--catalog is required to resolve deck card ids")
	}
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	d, report, err := deck.ParseYDK(string(content), cat, nil)
	if err != nil {
		return nil, err
	}
	display.ImportReport(os.Stderr, report)

	snapshot := d.Snapshot()
	return &snapshot, nil
}
