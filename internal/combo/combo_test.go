package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pred(name string, copies, min, max int) CardPredicate {
	return CardPredicate{Name: name, CopiesInDeck: copies, MinInHand: min, MaxInHand: max}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		combo    Combo
		deckSize int
		handSize int
		want     VerdictKind
	}{
		{
			name:     "valid single card",
			combo:    Combo{Cards: []CardPredicate{pred("Ash", 3, 1, 3)}},
			deckSize: 40, handSize: 5,
			want: Valid,
		},
		{
			name:     "empty combo",
			combo:    Combo{},
			deckSize: 40, handSize: 5,
			want: NoCards,
		},
		{
			name: "copies exceed deck",
			combo: Combo{Cards: []CardPredicate{
				pred("A", 30, 1, 3), pred("B", 20, 1, 3),
			}},
			deckSize: 40, handSize: 5,
			want: TotalCopiesExceedDeck,
		},
		{
			name:     "min exceeds copies",
			combo:    Combo{Cards: []CardPredicate{pred("A", 1, 2, 3)}},
			deckSize: 40, handSize: 5,
			want: MinExceedsCopies,
		},
		{
			name:     "min exceeds hand",
			combo:    Combo{Cards: []CardPredicate{pred("A", 10, 6, 10)}},
			deckSize: 40, handSize: 5,
			want: MinExceedsHand,
		},
		{
			name:     "max less than min",
			combo:    Combo{Cards: []CardPredicate{pred("A", 3, 2, 1)}},
			deckSize: 40, handSize: 5,
			want: MaxLessThanMin,
		},
		{
			name:     "zero copies nonzero min",
			combo:    Combo{Cards: []CardPredicate{pred("A", 0, 1, 1)}},
			deckSize: 40, handSize: 5,
			want: ZeroCopiesRequireZeroMin,
		},
		{
			name: "sum of mins exceeds hand",
			combo: Combo{Cards: []CardPredicate{
				pred("A", 3, 3, 3), pred("B", 3, 3, 3),
			}},
			deckSize: 40, handSize: 5,
			want: SumOfMinsExceedsHand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.combo, tt.deckSize, tt.handSize)
			assert.Equal(t, tt.want, got.Kind)

			// Validation is idempotent.
			assert.Equal(t, got, Validate(tt.combo, tt.deckSize, tt.handSize))
		})
	}
}

func TestLabelKeyCollapsesDuplicates(t *testing.T) {
	a := CardPredicate{Name: "Ash Blossom & Joyous Spring", CatalogID: 14558127}
	b := CardPredicate{Name: "ASH BLOSSOM & JOYOUS SPRING", CatalogID: 14558127}
	c := CardPredicate{Name: "Ash Blossom & Joyous Spring", CatalogID: 0}

	assert.Equal(t, a.LabelKey(), b.LabelKey())
	assert.NotEqual(t, a.LabelKey(), c.LabelKey())
}

func TestLabelTable(t *testing.T) {
	table := NewLabelTable()

	i := table.Intern(pred("A", 3, 1, 3))
	j := table.Intern(pred("B", 2, 1, 2))
	k := table.Intern(pred("A", 1, 0, 1)) // same label, fewer copies

	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 0, k)
	assert.Equal(t, 2, table.Len())

	// Shared labels keep the maximum copies requested.
	assert.Equal(t, []int{3, 2}, table.Copies())

	table.Intern(pred("B", 3, 1, 3))
	assert.Equal(t, []int{3, 3}, table.Copies())
}

func TestBuildTreeEval(t *testing.T) {
	c := Combo{Cards: []CardPredicate{
		pred("A", 3, 1, 3),
		pred("B", 3, 1, 3),
	}}
	table := NewLabelTable()
	tree := BuildTree(c, table)

	assert.True(t, tree.Eval([]int{1, 1}))
	assert.True(t, tree.Eval([]int{3, 2}))
	assert.False(t, tree.Eval([]int{0, 2}))
	assert.False(t, tree.Eval([]int{1, 0}))
}

func TestBuildTreeExactRange(t *testing.T) {
	c := Combo{Cards: []CardPredicate{pred("A", 3, 2, 2)}}
	tree := BuildTree(c, NewLabelTable())

	assert.False(t, tree.Eval([]int{1}))
	assert.True(t, tree.Eval([]int{2}))
	assert.False(t, tree.Eval([]int{3}))
}

func TestBuildTreeSharedTableAcrossCombos(t *testing.T) {
	table := NewLabelTable()
	first := BuildTree(Combo{Cards: []CardPredicate{pred("A", 3, 1, 3)}}, table)
	second := BuildTree(Combo{Cards: []CardPredicate{
		pred("A", 2, 1, 2), pred("B", 3, 1, 3),
	}}, table)

	// Both trees index label A at column 0.
	counts := []int{1, 0}
	assert.True(t, first.Eval(counts))
	assert.False(t, second.Eval(counts))

	counts = []int{1, 1}
	assert.True(t, second.Eval(counts))
}

func TestStarter(t *testing.T) {
	c := Combo{Cards: []CardPredicate{pred("Opener", 3, 1, 3), pred("Extender", 3, 1, 3)}}
	s, ok := c.Starter()
	assert.True(t, ok)
	assert.Equal(t, "Opener", s.Name)

	_, ok = Combo{}.Starter()
	assert.False(t, ok)
}
