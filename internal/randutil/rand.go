// Package randutil centralises RNG construction so every call site derives
// the two 64-bit PCG seeds the same way and stays reproducible from a single
// int64 seed.
package randutil

import (
	"time"

	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewRandom returns a *rand.Rand seeded from the wall clock, along with the
// seed it used so callers can log it for replay
func NewRandom() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// mix is the splitmix64 finalizer; it spreads sequential seeds across the
// full 64-bit space
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
