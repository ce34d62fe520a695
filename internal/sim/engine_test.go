package sim

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/hypergeo"
	"github.com/lox/firsthand/internal/randutil"
)

func testEngine(simulations int) *Engine {
	return New(Config{
		Simulations: simulations,
		Logger:      log.New(io.Discard),
	})
}

func pred(name string, copies, min, max int) combo.CardPredicate {
	return combo.CardPredicate{Name: name, CopiesInDeck: copies, MinInHand: min, MaxInHand: max}
}

func single(name string, copies, min, max int) combo.Combo {
	return combo.Combo{ID: name, Name: name, Cards: []combo.CardPredicate{pred(name, copies, min, max)}}
}

func TestSingleComboAtLeastOne(t *testing.T) {
	// Three copies in forty, draw five, 1-3 required:
	// exact hypergeometric gives 1 − C(37,5)/C(40,5) ≈ 33.76%.
	e := testEngine(200_000)
	rng := randutil.New(12345)

	got := e.SingleCombo(single("Ash", 3, 1, 3), 40, 5, rng)
	want := hypergeo.RangeProbability(40, 3, 5, 1, 3)
	assert.InDelta(t, want, got, 0.5)
	assert.InDelta(t, 33.76, got, 0.5)
}

func TestSingleComboExactCount(t *testing.T) {
	// Exactly two of three copies in six draws from forty.
	e := testEngine(200_000)
	rng := randutil.New(12345)

	got := e.SingleCombo(single("Ash", 3, 2, 2), 40, 6, rng)
	want := hypergeo.Probability(40, 3, 6, 2)
	assert.InDelta(t, want, got, 0.3)
}

func TestTwoCardAnd(t *testing.T) {
	// Both of two different 3-ofs in a hand of five. Joint
	// hypergeometric by inclusion-exclusion:
	// 1 − 2·C(37,5)/C(40,5) + C(34,5)/C(40,5) ≈ 9.80%.
	c := combo.Combo{Name: "two-card", Cards: []combo.CardPredicate{
		pred("A", 3, 1, 3),
		pred("B", 3, 1, 3),
	}}
	e := testEngine(200_000)
	rng := randutil.New(12345)

	none := hypergeo.Choose(37, 5) / hypergeo.Choose(40, 5)
	both := 1 - 2*none + hypergeo.Choose(34, 5)/hypergeo.Choose(40, 5)

	got := e.SingleCombo(c, 40, 5, rng)
	assert.InDelta(t, both*100, got, 0.5)
}

func TestAnyComboOr(t *testing.T) {
	// Either of two independent 3-ofs:
	// 1 − C(34,5)/C(40,5) ≈ 57.71%.
	combos := []combo.Combo{
		single("A", 3, 1, 3),
		single("B", 3, 1, 3),
	}
	e := testEngine(200_000)
	rng := randutil.New(12345)

	want := (1 - hypergeo.Choose(34, 5)/hypergeo.Choose(40, 5)) * 100
	got := e.AnyCombo(combos, 40, 5, rng)
	assert.InDelta(t, want, got, 0.5)
}

func TestAnyComboBounds(t *testing.T) {
	// max(individual) ≤ anyCombo ≤ Σ individual, within noise.
	combos := []combo.Combo{
		single("A", 3, 1, 3),
		single("B", 2, 1, 2),
		single("C", 1, 1, 1),
	}
	e := testEngine(100_000)

	var individual []float64
	maxP, sumP := 0.0, 0.0
	for i, c := range combos {
		p := e.SingleCombo(c, 40, 5, randutil.New(int64(100+i)))
		individual = append(individual, p)
		if p > maxP {
			maxP = p
		}
		sumP += p
	}

	any := e.AnyCombo(combos, 40, 5, randutil.New(999))
	assert.GreaterOrEqual(t, any, maxP-0.5, "anyCombo below max individual: %v", individual)
	assert.LessOrEqual(t, any, sumP+0.5, "anyCombo above sum of individuals: %v", individual)
}

func TestInvalidComboScoresZero(t *testing.T) {
	impossible := single("Nothing", 0, 1, 1)
	valid := single("Ash", 3, 1, 3)

	e := testEngine(100_000)
	assert.Equal(t, 0.0, e.SingleCombo(impossible, 40, 5, randutil.New(1)))

	// An invalid combo contributes nothing to the any-combo rate.
	anyBoth := e.AnyCombo([]combo.Combo{impossible, valid}, 40, 5, randutil.New(2))
	alone := e.SingleCombo(valid, 40, 5, randutil.New(2))
	assert.InDelta(t, alone, anyBoth, 0.5)
}

func TestAllInvalidCombosScoreZero(t *testing.T) {
	e := testEngine(1000)
	any := e.AnyCombo([]combo.Combo{single("X", 0, 1, 1)}, 40, 5, randutil.New(3))
	assert.Equal(t, 0.0, any)
}

func TestProbabilityRange(t *testing.T) {
	e := testEngine(10_000)
	combos := []combo.Combo{
		single("A", 1, 0, 1),
		single("B", 40, 1, 5),
		single("C", 3, 3, 3),
	}
	for _, c := range combos {
		p := e.SingleCombo(c, 40, 5, randutil.New(7))
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
	}
}

func TestDeterminismUnderFixedSeed(t *testing.T) {
	combos := []combo.Combo{
		single("A", 3, 1, 3),
		single("B", 2, 1, 2),
	}

	run := func() []float64 {
		e := testEngine(50_000)
		rng := randutil.New(424242)
		out := []float64{
			e.SingleCombo(combos[0], 40, 5, rng),
			e.SingleCombo(combos[1], 40, 5, rng),
			e.AnyCombo(combos, 40, 5, rng),
		}
		return out
	}

	first := run()
	second := run()
	assert.Equal(t, first, second, "fixed seed must give bit-identical results")
}

func TestCacheEquivalence(t *testing.T) {
	// Two combos with identical shapes but different names share a
	// cache entry: the second call must return the identical value
	// without consuming randomness.
	e := testEngine(50_000)

	first := e.SingleCombo(single("Ash Blossom", 3, 1, 3), 40, 5, randutil.New(11))
	second := e.SingleCombo(single("Effect Veiler", 3, 1, 3), 40, 5, randutil.New(99))
	assert.Equal(t, first, second)

	// Clearing the cache forces a fresh run.
	e.ClearCache()
	third := e.SingleCombo(single("Effect Veiler", 3, 1, 3), 40, 5, randutil.New(99))
	assert.InDelta(t, first, third, 1.0)
}

func TestBoundaryWholeDeck(t *testing.T) {
	// Every card in the deck satisfies the combo: certainty.
	e := testEngine(10_000)
	p := e.SingleCombo(single("All", 40, 1, 5), 40, 5, randutil.New(5))
	assert.Equal(t, 100.0, p)
}

func TestBoundaryZeroHand(t *testing.T) {
	e := testEngine(1000)

	// Zero hand size: satisfied iff every minimum is zero.
	p := e.SingleCombo(single("Optional", 3, 0, 3), 40, 0, randutil.New(6))
	assert.Equal(t, 100.0, p)

	p = e.SingleCombo(single("Required", 3, 1, 3), 40, 0, randutil.New(6))
	assert.Equal(t, 0.0, p)
}

func TestMockClock(t *testing.T) {
	// The engine reads time only through its injected clock.
	clock := quartz.NewMock(t)
	e := New(Config{Simulations: 1000, Logger: log.New(io.Discard), Clock: clock})

	p := e.SingleCombo(single("Ash", 3, 1, 3), 40, 5, randutil.New(8))
	assert.Greater(t, p, 0.0)
}

func TestShapeKey(t *testing.T) {
	a := single("A", 3, 1, 3)
	b := single("B", 3, 1, 3)
	c := single("C", 2, 1, 2)

	assert.Equal(t,
		shapeKey([]combo.Combo{a}, 40, 5),
		shapeKey([]combo.Combo{b}, 40, 5))
	assert.NotEqual(t,
		shapeKey([]combo.Combo{a}, 40, 5),
		shapeKey([]combo.Combo{c}, 40, 5))
	assert.NotEqual(t,
		shapeKey([]combo.Combo{a}, 40, 5),
		shapeKey([]combo.Combo{a}, 40, 6))
	assert.NotEqual(t,
		shapeKey([]combo.Combo{a, c}, 40, 5),
		shapeKey([]combo.Combo{c, a}, 40, 5))
}

func TestBuildDeckArray(t *testing.T) {
	buf := buildDeckArray(make([]int, 10), []int{3, 2})
	require.Equal(t, []int{0, 0, 0, 1, 1, -1, -1, -1, -1, -1}, buf)

	// Overflowing labels are dropped at the buffer boundary.
	buf = buildDeckArray(make([]int, 4), []int{3, 3})
	require.Equal(t, []int{0, 0, 0, 1}, buf)
}
