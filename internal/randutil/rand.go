// Package randutil centralises RNG construction and the partial-shuffle
// sampling primitive used by the simulation engine.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *mathrand.Rand {
	u := uint64(seed)
	return mathrand.New(mathrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewOS returns a *rand.Rand seeded from the operating system, for
// callers that did not ask for reproducibility.
func NewOS() *mathrand.Rand {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand is documented never to fail on supported
		// platforms; fall back to the zero seed rather than panic.
		return New(0)
	}
	return New(int64(binary.LittleEndian.Uint64(buf[:])))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// PartialShuffle runs the first h steps of a Fisher–Yates shuffle over
// buf, leaving a uniform h-subset of buf in positions 0..h-1. This is
// equivalent to drawing h cards without replacement and avoids
// shuffling the whole deck each trial.
func PartialShuffle(buf []int, h int, rng *mathrand.Rand) {
	n := len(buf)
	if h > n {
		h = n
	}
	for i := 0; i < h; i++ {
		j := i + rng.IntN(n-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
}
