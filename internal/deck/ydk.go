package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/firsthand/internal/catalog"
)

// ImportReport describes everything the importer had to correct or
// could not place while reading a deck list.
type ImportReport struct {
	// Relocated lists catalog ids moved between Main and Extra because
	// the list had them under the wrong section.
	Relocated []int
	// Unknown lists ids with no catalog entry; they are imported as
	// placeholder cards so the deck size stays accurate.
	Unknown []int
	// Rejected lists insertions refused by capacity or banlist checks.
	Rejected []*Rejection
}

// ParseYDK reads the line-oriented ydk deck format: `#` comments,
// `#main` / `#extra` / `!side` section markers, one decimal catalog id
// per body line. Cards under the wrong section for their type are
// relocated rather than rejected.
func ParseYDK(content string, cat *catalog.Catalog, format *Format) (*Deck, *ImportReport, error) {
	d := New(format)
	report := &ImportReport{}

	zone := Main
	seen := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "#main":
			zone = Main
			seen = true
			continue
		case "#extra":
			zone = Extra
			seen = true
			continue
		case "!side":
			zone = Side
			seen = true
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue // comment or unrecognised marker
		}

		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid card id %q", line)
		}
		seen = true

		card, ok := cat.LookupByID(id)
		if !ok {
			report.Unknown = append(report.Unknown, id)
			card = &catalog.Card{ID: id, Name: fmt.Sprintf("Unknown Card %d", id)}
		}

		target := zone
		if card.IsExtraDeck() && zone == Main {
			target = Extra
			report.Relocated = append(report.Relocated, id)
		} else if !card.IsExtraDeck() && zone == Extra {
			target = Main
			report.Relocated = append(report.Relocated, id)
		}

		if _, rej := d.Add(card, target); rej != nil {
			report.Rejected = append(report.Rejected, rej)
		}
	}

	if !seen {
		return nil, nil, fmt.Errorf("deck list contains no cards")
	}
	return d, report, nil
}

// ExportYDK writes the deck back out in normalised section order.
// Exporting an imported deck reproduces itself after one round.
func ExportYDK(s Snapshot) string {
	var b strings.Builder
	b.WriteString("#main\n")
	for _, card := range s.Main {
		fmt.Fprintf(&b, "%d\n", card.ID)
	}
	b.WriteString("#extra\n")
	for _, card := range s.Extra {
		fmt.Fprintf(&b, "%d\n", card.ID)
	}
	b.WriteString("!side\n")
	for _, card := range s.Side {
		fmt.Fprintf(&b, "%d\n", card.ID)
	}
	return b.String()
}
