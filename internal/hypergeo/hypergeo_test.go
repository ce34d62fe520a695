package hypergeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/firsthand/internal/combo"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{40, 5, 658008},
		{37, 5, 435897},
		{52, 5, 2598960},
		{10, -1, 0},
		{10, 11, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Choose(tt.n, tt.k), 1e-6, "C(%d,%d)", tt.n, tt.k)
	}
}

func TestProbabilityKnownValues(t *testing.T) {
	// At least one of three copies in five draws from forty:
	// 1 − C(37,5)/C(40,5) ≈ 33.76%.
	atLeastOne := 100 - Probability(40, 3, 5, 0)
	assert.InDelta(t, 33.76, atLeastOne, 0.01)

	// Exactly two of three copies in six draws from forty:
	// 3 × C(37,4) / C(40,6) ≈ 5.16%.
	assert.InDelta(t, 5.16, Probability(40, 3, 6, 2), 0.01)
}

func TestProbabilitySumsToHundred(t *testing.T) {
	// The PMF over its support sums to 100%.
	cases := []struct{ N, K, n int }{
		{40, 3, 5},
		{40, 40, 5},
		{60, 20, 6},
		{10, 3, 8}, // support starts above zero here
	}
	for _, c := range cases {
		total := 0.0
		for k := 0; k <= c.n; k++ {
			total += Probability(c.N, c.K, c.n, k)
		}
		assert.InDelta(t, 100.0, total, 1e-9, "N=%d K=%d n=%d", c.N, c.K, c.n)
	}
}

func TestProbabilityOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, Probability(40, 3, 5, 4))
	assert.Equal(t, 0.0, Probability(40, 3, 5, -1))
	assert.Equal(t, 0.0, Probability(0, 0, 5, 0)) // C(0,5) = 0 denominator
}

func TestRangeProbability(t *testing.T) {
	got := RangeProbability(40, 3, 5, 1, 3)
	assert.InDelta(t, 33.76, got, 0.01)
}

func TestBuildSingleCardRange(t *testing.T) {
	c := combo.Combo{Name: "Starter", Cards: []combo.CardPredicate{
		{Name: "Ash", CopiesInDeck: 3, MinInHand: 1, MaxInHand: 3},
	}}
	f := Build(c, 40, 5, 33.70)

	require.Len(t, f.Scenarios, 1)
	assert.Len(t, f.Scenarios[0].Lines, 3)
	assert.True(t, f.OverallExact)
	assert.InDelta(t, 33.76, f.Overall, 0.01)
	assert.Contains(t, f.Scenarios[0].Lines[0].Expression, "C(3,1)")
}

func TestBuildSingleCardExact(t *testing.T) {
	c := combo.Combo{Cards: []combo.CardPredicate{
		{Name: "Ash", CopiesInDeck: 3, MinInHand: 2, MaxInHand: 2},
	}}
	f := Build(c, 40, 6, 0)

	require.Len(t, f.Scenarios, 1)
	require.Len(t, f.Scenarios[0].Lines, 1)
	assert.Equal(t, 2, f.Scenarios[0].Lines[0].K)
	assert.InDelta(t, 5.16, f.Overall, 0.01)
}

func TestBuildMultiCardUsesMonteCarlo(t *testing.T) {
	c := combo.Combo{Cards: []combo.CardPredicate{
		{Name: "A", CopiesInDeck: 3, MinInHand: 1, MaxInHand: 3},
		{Name: "B", CopiesInDeck: 3, MinInHand: 1, MaxInHand: 3},
	}}
	f := Build(c, 40, 5, 11.73)

	assert.Len(t, f.Scenarios, 2)
	assert.False(t, f.OverallExact)
	assert.InDelta(t, 11.73, f.Overall, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.76, Round2(33.7551))
	assert.Equal(t, 0.0, Round2(0.0001))
}
