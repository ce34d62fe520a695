package catalog

import "strings"

// Category is the broad card category printed on the card frame.
type Category int

const (
	Monster Category = iota
	Spell
	Trap
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case Monster:
		return "Monster"
	case Spell:
		return "Spell"
	case Trap:
		return "Trap"
	default:
		return "?"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monster":
		return Monster, true
	case "spell":
		return Spell, true
	case "trap":
		return Trap, true
	default:
		return Monster, false
	}
}

// Card is an immutable card record. Atk and Def are pointers because
// "?" and link monsters leave them undefined, and the hand-trap rules
// distinguish 0 from absent.
type Card struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  Category
	Type      string `json:"type"` // full type line, e.g. "Synchro Monster"
	Attribute string `json:"attribute,omitempty"`
	Level     int    `json:"level,omitempty"`
	Atk       *int   `json:"atk,omitempty"`
	Def       *int   `json:"def,omitempty"`
	Text      string `json:"desc"`
}

// extraDeckTypes are the type-line markers for cards that live in the
// Extra Deck.
var extraDeckTypes = []string{"fusion", "synchro", "xyz", "link"}

// IsExtraDeck reports whether the card belongs in the Extra Deck.
func (c Card) IsExtraDeck() bool {
	t := strings.ToLower(c.Type)
	for _, marker := range extraDeckTypes {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
