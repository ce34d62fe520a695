// Package handtrap classifies cards that can be played from the hand
// during the opponent's turn. Classification is a first-match decision
// list: a known-name set, then exclusion patterns, then card-text
// patterns per category. The patterns are declared as data so tests can
// enumerate them.
package handtrap

import (
	"regexp"
	"strings"

	"github.com/lox/firsthand/internal/catalog"
)

// knownNames short-circuits classification for staples whose text does
// not follow the usual templates.
var knownNames = map[string]bool{
	"ash blossom & joyous spring":     true,
	"ghost ogre & snow rabbit":        true,
	"ghost belle & haunted mansion":   true,
	"ghost mourner & moonlit chill":   true,
	"ghost reaper & winter cherries":  true,
	"ghost sister & spooky dogwood":   true,
	"effect veiler":                   true,
	"infinite impermanence":           true,
	"droll & lock bird":               true,
	"nibiru, the primal being":        true,
	"d.d. crow":                       true,
	"skull meister":                   true,
	"psy-framegear gamma":             true,
	"dimension shifter":               true,
	"artifact lancea":                 true,
	"bystial magnamhut":               true,
	"bystial druiswurm":               true,
	"bystial baldrake":                true,
	"bystial saronir":                 true,
	"fantastical dragon phantazmay":   true,
	"gnomaterial":                     true,
	"contact \"c\"":                   true,
	"maxx \"c\"":                      true,
	"mulcharmy fuwalos":               true,
	"mulcharmy purulia":               true,
	"mulcharmy meowls":                true,
	"dominus impulse":                 true,
	"dominus purge":                   true,
	"red reboot":                      true,
	"lord of the heavenly prison":     true,
	"kurikara divincarnate":           true,
	"retaliating \"c\"":               true,
	"dirge of the lost star":          true,
	"herald of orange light":          true,
	"swordsoul strategist longyuan":   true,
	"eradicator epidemic virus":       false, // set from field, common false positive
}

// exclusions veto a hand-trap reading before the category patterns run.
// Cards that act from the hand on your own turn, or merely reveal
// themselves, are starters rather than hand traps.
var exclusions = []*regexp.Regexp{
	regexp.MustCompile(`(?s)during your turn.*from your hand`),
	regexp.MustCompile(`(?s)reveal.*from your hand`),
	regexp.MustCompile(`(?s)during your main phase.*from your hand`),
}

// monsterPatterns match monster effects usable from the hand on the
// opponent's turn.
var monsterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(quick effect\): you can discard this card`),
	regexp.MustCompile(`(?s)during your opponent's turn.*from your hand`),
	regexp.MustCompile(`(?s)from your hand.*during your opponent's turn`),
	regexp.MustCompile(`(?s)when your opponent.*you can.*from your hand`),
	regexp.MustCompile(`(?s)if your opponent.*discard this card from your hand`),
}

// trapPatterns match traps with a hand-activation clause.
var trapPatterns = []*regexp.Regexp{
	regexp.MustCompile(`you can activate this card from your hand`),
	regexp.MustCompile(`if you control no cards, you can activate this card from your hand`),
	regexp.MustCompile(`if your opponent controls a card, you can activate this card from your hand`),
}

// IsHandTrap reports whether the card can interrupt from the hand.
// First match wins; spells are never hand traps.
func IsHandTrap(card *catalog.Card) bool {
	if card == nil {
		return false
	}

	if known, ok := knownNames[strings.ToLower(card.Name)]; ok {
		return known
	}

	if card.Category == catalog.Spell {
		return false
	}

	text := strings.ToLower(card.Text)
	for _, re := range exclusions {
		if re.MatchString(text) {
			return false
		}
	}

	switch card.Category {
	case catalog.Monster:
		// Zero-stat monsters that mention the hand are almost always
		// hand traps (the Ghost girls / Kuriboh template).
		if card.Atk != nil && card.Def != nil && *card.Atk == 0 && *card.Def == 0 &&
			strings.Contains(text, "from your hand") {
			return true
		}
		for _, re := range monsterPatterns {
			if re.MatchString(text) {
				return true
			}
		}
	case catalog.Trap:
		for _, re := range trapPatterns {
			if re.MatchString(text) {
				return true
			}
		}
	}

	return false
}

// CardCopies pairs a card with its multiplicity in a deck.
type CardCopies struct {
	Card   *catalog.Card
	Copies int
}

// CountHandTraps sums the copies of hand traps in a multiset of cards.
func CountHandTraps(cards []CardCopies) int {
	total := 0
	for _, cc := range cards {
		if IsHandTrap(cc.Card) {
			total += cc.Copies
		}
	}
	return total
}

// UniqueHandTraps groups a card list by name and returns each distinct
// hand trap with its copy count, in first-appearance order.
func UniqueHandTraps(cards []*catalog.Card) []CardCopies {
	var out []CardCopies
	index := make(map[string]int)
	for _, card := range cards {
		if card == nil || !IsHandTrap(card) {
			continue
		}
		key := strings.ToLower(card.Name)
		if i, ok := index[key]; ok {
			out[i].Copies++
			continue
		}
		index[key] = len(out)
		out = append(out, CardCopies{Card: card, Copies: 1})
	}
	return out
}
