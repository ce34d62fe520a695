// Package hypergeo computes exact opening-hand probabilities with the
// hypergeometric distribution, for display alongside the simulated
// results. All arithmetic is IEEE double; the multiplicative binomial
// form keeps intermediates bounded for deck sizes up to 100.
package hypergeo

import "math"

// Choose returns C(n, k) as a float64 using the incremental product
// ∏ (n−i)/(i+1). Factorials would overflow long before n = 100; the
// product never does.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}

// Probability returns the chance, in percent, of drawing exactly k of
// the K successes when drawing n cards from a deck of N.
func Probability(N, K, n, k int) float64 {
	denom := Choose(N, n)
	if denom == 0 {
		return 0
	}
	return Choose(K, k) * Choose(N-K, n-k) / denom * 100
}

// RangeProbability sums Probability over k in [min, max], clamped to
// the support of the distribution.
func RangeProbability(N, K, n, min, max int) float64 {
	total := 0.0
	for k := min; k <= max; k++ {
		total += Probability(N, K, n, k)
	}
	return total
}

// Round2 rounds a percentage to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
