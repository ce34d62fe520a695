package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestLookup(t *testing.T) {
	c := New([]Card{
		{ID: 14558127, Name: "Ash Blossom & Joyous Spring", Type: "Tuner Effect Monster", Level: 3, Atk: intp(0), Def: intp(1800)},
		{ID: 24224830, Name: "Called by the Grave", Type: "Quick-Play Spell Card"},
	})

	card, ok := c.LookupByID(14558127)
	require.True(t, ok)
	assert.Equal(t, "Ash Blossom & Joyous Spring", card.Name)
	assert.Equal(t, Monster, card.Category)

	card, ok = c.LookupByName("called by the grave")
	require.True(t, ok)
	assert.Equal(t, Spell, card.Category)

	_, ok = c.LookupByID(12345)
	assert.False(t, ok)
	_, ok = c.LookupByName("nonexistent card")
	assert.False(t, ok)
}

func TestIsExtraDeck(t *testing.T) {
	tests := []struct {
		typeLine string
		extra    bool
	}{
		{"Effect Monster", false},
		{"Normal Monster", false},
		{"Fusion Monster", true},
		{"Synchro Tuner Monster", true},
		{"XYZ Monster", true},
		{"Link Monster", true},
		{"Pendulum Effect Monster", false},
		{"Pendulum Effect Fusion Monster", true},
		{"Spell Card", false},
		{"Trap Card", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeLine, func(t *testing.T) {
			card := Card{Name: "x", Type: tt.typeLine}
			assert.Equal(t, tt.extra, card.IsExtraDeck())
		})
	}
}

func TestCategoryFromType(t *testing.T) {
	assert.Equal(t, Spell, categoryFromType("Quick-Play Spell Card"))
	assert.Equal(t, Trap, categoryFromType("Counter Trap Card"))
	assert.Equal(t, Monster, categoryFromType("Ritual Effect Monster"))
}

func TestParseCategory(t *testing.T) {
	cat, ok := ParseCategory(" Monster ")
	require.True(t, ok)
	assert.Equal(t, Monster, cat)

	_, ok = ParseCategory("fish")
	assert.False(t, ok)
}
