// Package share encodes a calculation as a compact string for share
// links: base64 over JSON. Decoding is all-or-nothing; a malformed or
// incomplete payload never yields partial state.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lox/firsthand/internal/combo"
)

// Card is the serialized form of one combo card. Logic is carried for
// compatibility with older links but not honoured by the engine, which
// is strict AND within a combo.
type Card struct {
	Name         string `json:"name"`
	CatalogID    int    `json:"catalogId,omitempty"`
	IsCustom     bool   `json:"isCustom,omitempty"`
	CopiesInDeck int    `json:"copiesInDeck"`
	MinInHand    int    `json:"minInHand"`
	MaxInHand    int    `json:"maxInHand"`
	Logic        string `json:"logic,omitempty"`
}

// Combo is the serialized form of one combo.
type Combo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// DeckCard is one card of a serialized deck zone.
type DeckCard struct {
	Name      string `json:"name"`
	CatalogID int    `json:"catalogId,omitempty"`
	Category  string `json:"category,omitempty"`
	Level     int    `json:"level,omitempty"`
	Attribute string `json:"attribute,omitempty"`
}

// DeckZones carries an optional decklist alongside the combos.
type DeckZones struct {
	Main  []DeckCard `json:"main"`
	Extra []DeckCard `json:"extra"`
	Side  []DeckCard `json:"side"`
}

// YDK carries an opaque imported deck file.
type YDK struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Calc is a complete serialized calculation.
type Calc struct {
	DeckSize             int        `json:"deckSize"`
	HandSize             int        `json:"handSize"`
	Combos               []Combo    `json:"combos"`
	DeckZones            *DeckZones `json:"deckZones,omitempty"`
	YDK                  *YDK       `json:"ydk,omitempty"`
	TestHandFromDecklist bool       `json:"testHandFromDecklist"`
}

// ToCombos converts the serialized combos to engine combos. Per-card
// logic tags are ignored by design.
func (c Calc) ToCombos() []combo.Combo {
	out := make([]combo.Combo, 0, len(c.Combos))
	for _, sc := range c.Combos {
		ec := combo.Combo{ID: sc.ID, Name: sc.Name}
		for _, card := range sc.Cards {
			ec.Cards = append(ec.Cards, combo.CardPredicate{
				Name:         card.Name,
				CatalogID:    card.CatalogID,
				IsCustom:     card.IsCustom,
				CopiesInDeck: card.CopiesInDeck,
				MinInHand:    card.MinInHand,
				MaxInHand:    card.MaxInHand,
			})
		}
		out = append(out, ec)
	}
	return out
}

// Encode serializes the calculation for a share link. The combos are
// normalised (logic defaulted to AND) without mutating the caller's
// slices, so encode → decode is the identity on the normalised form.
func Encode(c Calc) (string, error) {
	c.Combos = normaliseCombos(c.Combos)
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode calculation: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// wireCalc mirrors Calc with pointers where the decoder must tell an
// absent field from a zero one.
type wireCalc struct {
	DeckSize             *int        `json:"deckSize"`
	HandSize             *int        `json:"handSize"`
	Combos               []wireCombo `json:"combos"`
	DeckZones            *DeckZones  `json:"deckZones"`
	YDK                  *YDK        `json:"ydk"`
	TestHandFromDecklist *bool       `json:"testHandFromDecklist"`
}

type wireCombo struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Cards []wireCard `json:"cards"`
}

type wireCard struct {
	Name         *string `json:"name"`
	CatalogID    int     `json:"catalogId"`
	IsCustom     bool    `json:"isCustom"`
	CopiesInDeck *int    `json:"copiesInDeck"`
	MinInHand    *int    `json:"minInHand"`
	MaxInHand    *int    `json:"maxInHand"`
	Logic        string  `json:"logic"`
}

// Decode parses a share string. Missing required fields fail the
// decode; unknown fields are ignored; defaults are applied for logic
// and testHandFromDecklist.
func Decode(s string) (Calc, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		// Older links used standard padding.
		if data, err = base64.StdEncoding.DecodeString(s); err != nil {
			return Calc{}, fmt.Errorf("decode share string: %w", err)
		}
	}

	var wire wireCalc
	if err := json.Unmarshal(data, &wire); err != nil {
		return Calc{}, fmt.Errorf("parse share payload: %w", err)
	}

	if wire.DeckSize == nil {
		return Calc{}, missingField("deckSize")
	}
	if wire.HandSize == nil {
		return Calc{}, missingField("handSize")
	}
	if wire.Combos == nil {
		return Calc{}, missingField("combos")
	}

	out := Calc{
		DeckSize:             *wire.DeckSize,
		HandSize:             *wire.HandSize,
		DeckZones:            wire.DeckZones,
		YDK:                  wire.YDK,
		TestHandFromDecklist: true,
	}
	if wire.TestHandFromDecklist != nil {
		out.TestHandFromDecklist = *wire.TestHandFromDecklist
	}

	for i, wc := range wire.Combos {
		sc := Combo{ID: wc.ID, Name: wc.Name}
		for j, card := range wc.Cards {
			if card.Name == nil {
				return Calc{}, missingField(fmt.Sprintf("combos[%d].cards[%d].name", i, j))
			}
			if card.CopiesInDeck == nil {
				return Calc{}, missingField(fmt.Sprintf("combos[%d].cards[%d].copiesInDeck", i, j))
			}
			if card.MinInHand == nil {
				return Calc{}, missingField(fmt.Sprintf("combos[%d].cards[%d].minInHand", i, j))
			}
			if card.MaxInHand == nil {
				return Calc{}, missingField(fmt.Sprintf("combos[%d].cards[%d].maxInHand", i, j))
			}
			logic := card.Logic
			if logic == "" {
				logic = "AND"
			}
			sc.Cards = append(sc.Cards, Card{
				Name:         *card.Name,
				CatalogID:    card.CatalogID,
				IsCustom:     card.IsCustom,
				CopiesInDeck: *card.CopiesInDeck,
				MinInHand:    *card.MinInHand,
				MaxInHand:    *card.MaxInHand,
				Logic:        logic,
			})
		}
		out.Combos = append(out.Combos, sc)
	}

	return out, nil
}

func normaliseCombos(in []Combo) []Combo {
	out := make([]Combo, len(in))
	for i, cb := range in {
		cards := make([]Card, len(cb.Cards))
		copy(cards, cb.Cards)
		for j := range cards {
			if cards[j].Logic == "" {
				cards[j].Logic = "AND"
			}
		}
		cb.Cards = cards
		out[i] = cb
	}
	return out
}

func missingField(name string) error {
	return fmt.Errorf("share payload missing required field %q", name)
}
