// Package catalog provides read-only lookup of card records by id or
// name. The engine never mutates cards; records may be freely aliased.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalog indexes card records by id and by lowercased name.
type Catalog struct {
	byID   map[int]*Card
	byName map[string]*Card
}

// New builds a catalog from a slice of cards. Later duplicates win,
// matching how catalog dumps list reprints last.
func New(cards []Card) *Catalog {
	c := &Catalog{
		byID:   make(map[int]*Card, len(cards)),
		byName: make(map[string]*Card, len(cards)),
	}
	for i := range cards {
		card := &cards[i]
		if card.Type != "" {
			card.Category = categoryFromType(card.Type)
		}
		c.byID[card.ID] = card
		c.byName[strings.ToLower(card.Name)] = card
	}
	return c
}

// LookupByID returns the card with the given catalog id.
func (c *Catalog) LookupByID(id int) (*Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// LookupByName returns the card with the given name, case-insensitively.
func (c *Catalog) LookupByName(name string) (*Card, bool) {
	card, ok := c.byName[strings.ToLower(name)]
	return card, ok
}

// Len returns the number of distinct card ids in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// LoadFile reads a JSON card dump. Both a bare array and the
// {"data": [...]} envelope used by public card APIs are accepted.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		var envelope struct {
			Data []Card `json:"data"`
		}
		if err2 := json.Unmarshal(data, &envelope); err2 != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		cards = envelope.Data
	}

	return New(cards), nil
}

// categoryFromType maps a full type line to the broad category.
func categoryFromType(typeLine string) Category {
	t := strings.ToLower(typeLine)
	switch {
	case strings.Contains(t, "spell"):
		return Spell
	case strings.Contains(t, "trap"):
		return Trap
	default:
		return Monster
	}
}
