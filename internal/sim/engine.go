// Package sim is the Monte Carlo engine. Every public operation is a
// pure function of its inputs plus an injected RNG: under a fixed seed
// the returned probabilities are bit-identical across runs. Invalid
// combos score 0; the engine never returns errors.
package sim

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/firsthand/internal/combo"
	"github.com/lox/firsthand/internal/randutil"
)

// DefaultSimulations balances precision against latency: at 100 000
// trials the standard error on a 50% result is about ±0.16%.
const DefaultSimulations = 100_000

// Config holds configuration for the engine.
type Config struct {
	// Simulations is the trial count per query (default 100 000).
	Simulations int
	// Logger receives debug progress; nil discards.
	Logger *log.Logger
	// Clock is used for run timing; nil uses the real clock. Tests
	// inject a mock.
	Clock quartz.Clock
}

// Engine runs simulations and owns a result cache keyed by combo
// shape. Callers that need isolation create their own Engine; nothing
// is shared between instances. The cache is not safe for concurrent
// mutation.
type Engine struct {
	simulations int
	logger      *log.Logger
	clock       quartz.Clock
	cache       map[string]float64
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	if cfg.Simulations <= 0 {
		cfg.Simulations = DefaultSimulations
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Engine{
		simulations: cfg.Simulations,
		logger:      cfg.Logger,
		clock:       cfg.Clock,
		cache:       make(map[string]float64),
	}
}

// Simulations returns the configured trial count.
func (e *Engine) Simulations() int {
	return e.simulations
}

// ClearCache drops all memoized results.
func (e *Engine) ClearCache() {
	e.cache = make(map[string]float64)
}

// SingleCombo returns the percentage of trials in which the combo is
// satisfied by a random opening hand. Invalid combos return 0.
func (e *Engine) SingleCombo(c combo.Combo, deckSize, handSize int, rng *rand.Rand) float64 {
	if v := combo.Validate(c, deckSize, handSize); !v.OK() {
		e.logger.Debug("combo failed validation", "combo", c.Name, "verdict", v.Kind)
		return 0
	}

	key := shapeKey([]combo.Combo{c}, deckSize, handSize)
	if p, ok := e.cache[key]; ok {
		e.logger.Debug("cache hit", "key", key)
		return p
	}

	table := combo.NewLabelTable()
	tree := combo.BuildTree(c, table)
	p := e.run([]combo.Node{tree}, table.Copies(), deckSize, handSize, rng)
	e.cache[key] = p
	return p
}

// AnyCombo returns the percentage of trials in which at least one
// combo is satisfied. All combos are evaluated against the same hand,
// drawn from a shared label pool where equal labels across combos use
// the maximum copies requested. Invalid combos are never satisfied.
func (e *Engine) AnyCombo(combos []combo.Combo, deckSize, handSize int, rng *rand.Rand) float64 {
	key := shapeKey(combos, deckSize, handSize)
	if p, ok := e.cache[key]; ok {
		e.logger.Debug("cache hit", "key", key)
		return p
	}

	table := combo.NewLabelTable()
	var trees []combo.Node
	for _, c := range combos {
		if v := combo.Validate(c, deckSize, handSize); !v.OK() {
			e.logger.Debug("combo excluded from any-combo", "combo", c.Name, "verdict", v.Kind)
			continue
		}
		trees = append(trees, combo.BuildTree(c, table))
	}
	if len(trees) == 0 {
		e.cache[key] = 0
		return 0
	}

	p := e.run(trees, table.Copies(), deckSize, handSize, rng)
	e.cache[key] = p
	return p
}

// run executes the trial loop: build the deck array once, then per
// trial partial-shuffle, tally the opening hand and evaluate the trees
// in declared order, short-circuiting on the first success.
func (e *Engine) run(trees []combo.Node, copies []int, deckSize, handSize int, rng *rand.Rand) float64 {
	state := stateBuilding
	buf := buildDeckArray(make([]int, deckSize), copies)
	counts := make([]int, len(copies))

	successes := 0
	started := e.clock.Now()
	state = stateSampling
	for trial := 0; trial < e.simulations; trial++ {
		randutil.PartialShuffle(buf, handSize, rng)
		tallyHand(counts, buf, handSize)

		for _, tree := range trees {
			if tree.Eval(counts) {
				successes++
				break
			}
		}
	}
	state = stateDone

	p := float64(successes) / float64(e.simulations) * 100
	e.logger.Debug("simulation complete",
		"trials", e.simulations,
		"successes", successes,
		"probability", p,
		"state", state,
		"elapsed", e.clock.Since(started))
	return p
}

// buildDeckArray fills buf with each label id repeated by its copy
// count, in label order, padding the remainder with the −1 sentinel.
// Labels beyond the buffer length are dropped.
func buildDeckArray(buf []int, copies []int) []int {
	i := 0
	for label, n := range copies {
		for c := 0; c < n && i < len(buf); c++ {
			buf[i] = label
			i++
		}
	}
	for ; i < len(buf); i++ {
		buf[i] = -1
	}
	return buf
}

// tallyHand zeroes counts and tallies the first h positions of buf,
// ignoring the −1 padding.
func tallyHand(counts []int, buf []int, h int) {
	for i := range counts {
		counts[i] = 0
	}
	if h > len(buf) {
		h = len(buf)
	}
	for _, label := range buf[:h] {
		if label >= 0 {
			counts[label]++
		}
	}
}
