// Package deck models a deck as three ordered multisets of cards with
// banlist-aware insertion. The simulation engine never sees a live deck;
// it consumes a Snapshot taken between mutations.
package deck

import (
	"fmt"
	"strings"

	"github.com/lox/firsthand/internal/catalog"
)

// Zone identifies one of the three deck zones.
type Zone int

const (
	Main Zone = iota
	Extra
	Side
)

// String returns the string representation of a zone
func (z Zone) String() string {
	switch z {
	case Main:
		return "Main"
	case Extra:
		return "Extra"
	case Side:
		return "Side"
	default:
		return "?"
	}
}

// Capacity returns the maximum number of cards the zone holds.
func (z Zone) Capacity() int {
	if z == Main {
		return 60
	}
	return 15
}

// Limit is a banlist status with its maximum copy count.
type Limit int

const (
	Forbidden   Limit = 0
	Limited     Limit = 1
	SemiLimited Limit = 2
	Unlimited   Limit = 3
)

// Format maps card names to banlist limits. Names absent from the map
// are Unlimited.
type Format struct {
	Name   string
	Limits map[string]Limit
}

// MaxCopies returns the copy limit for a card name under this format.
func (f *Format) MaxCopies(name string) int {
	if f == nil || f.Limits == nil {
		return int(Unlimited)
	}
	if limit, ok := f.Limits[strings.ToLower(name)]; ok {
		return int(limit)
	}
	return int(Unlimited)
}

// RejectionKind classifies why an insertion was refused.
type RejectionKind int

const (
	ZoneFull RejectionKind = iota
	BanlistExceeded
	WrongZone
)

// String returns the string representation of a rejection kind
func (k RejectionKind) String() string {
	switch k {
	case ZoneFull:
		return "zone full"
	case BanlistExceeded:
		return "banlist limit exceeded"
	case WrongZone:
		return "wrong zone for card type"
	default:
		return "?"
	}
}

// Rejection is a typed refusal to mutate the deck. The deck is
// unchanged when one is returned.
type Rejection struct {
	Kind RejectionKind
	Card string
	Zone Zone
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("cannot add %q to %s deck: %s", r.Card, r.Zone, r.Kind)
}

// Entry is one card slot in a zone, with a stable id for removal.
type Entry struct {
	ID   int
	Card *catalog.Card
}

// Deck holds the three zones and assigns entry ids.
type Deck struct {
	format *Format
	zones  [3][]Entry
	nextID int
}

// New creates an empty deck validated against the given format.
// A nil format means no banlist restrictions.
func New(format *Format) *Deck {
	return &Deck{format: format, nextID: 1}
}

// Add inserts a card into a zone, enforcing zone capacity, zone
// eligibility and the banlist. Returns the new entry on success.
func (d *Deck) Add(card *catalog.Card, zone Zone) (Entry, *Rejection) {
	if len(d.zones[zone]) >= zone.Capacity() {
		return Entry{}, &Rejection{Kind: ZoneFull, Card: card.Name, Zone: zone}
	}

	extra := card.IsExtraDeck()
	if extra && zone == Main {
		return Entry{}, &Rejection{Kind: WrongZone, Card: card.Name, Zone: zone}
	}
	if !extra && zone == Extra {
		return Entry{}, &Rejection{Kind: WrongZone, Card: card.Name, Zone: zone}
	}

	if d.Copies(card.Name) >= d.format.MaxCopies(card.Name) {
		return Entry{}, &Rejection{Kind: BanlistExceeded, Card: card.Name, Zone: zone}
	}

	entry := Entry{ID: d.nextID, Card: card}
	d.nextID++
	d.zones[zone] = append(d.zones[zone], entry)
	return entry, nil
}

// Remove deletes the entry with the given id from a zone. Returns
// false if no such entry exists.
func (d *Deck) Remove(entryID int, zone Zone) bool {
	for i, e := range d.zones[zone] {
		if e.ID == entryID {
			d.zones[zone] = append(d.zones[zone][:i], d.zones[zone][i+1:]...)
			return true
		}
	}
	return false
}

// ClearZone removes every card from a zone.
func (d *Deck) ClearZone(zone Zone) {
	d.zones[zone] = nil
}

// Copies counts how many copies of a card name the whole deck holds.
// The banlist counts Main, Extra and Side together.
func (d *Deck) Copies(name string) int {
	n := 0
	for zone := range d.zones {
		for _, e := range d.zones[zone] {
			if strings.EqualFold(e.Card.Name, name) {
				n++
			}
		}
	}
	return n
}

// Size returns the number of cards in a zone.
func (d *Deck) Size(zone Zone) int {
	return len(d.zones[zone])
}

// Entries returns the entries of a zone in insertion order.
func (d *Deck) Entries(zone Zone) []Entry {
	out := make([]Entry, len(d.zones[zone]))
	copy(out, d.zones[zone])
	return out
}

// Snapshot is an immutable view of the deck for the engine.
type Snapshot struct {
	Main  []*catalog.Card
	Extra []*catalog.Card
	Side  []*catalog.Card
}

// Snapshot copies the current zone contents.
func (d *Deck) Snapshot() Snapshot {
	copyZone := func(zone Zone) []*catalog.Card {
		out := make([]*catalog.Card, len(d.zones[zone]))
		for i, e := range d.zones[zone] {
			out[i] = e.Card
		}
		return out
	}
	return Snapshot{Main: copyZone(Main), Extra: copyZone(Extra), Side: copyZone(Side)}
}

// MainMultiset returns the Main zone as name → copies.
func (s Snapshot) MainMultiset() map[string]int {
	out := make(map[string]int)
	for _, card := range s.Main {
		out[card.Name]++
	}
	return out
}

// MainSize returns the number of cards in the snapshot's Main zone.
func (s Snapshot) MainSize() int {
	return len(s.Main)
}
