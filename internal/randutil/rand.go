// Package randutil builds the random sources handed to players.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand derived from seed. The same seed always
// yields the same sequence; a zero seed is replaced by the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream under base, so
// concurrent players never share a generator. A zero base stays
// nondeterministic.
func Derive(base int64, n int) int64 {
	if base == 0 {
		return 0
	}
	return int64(splitmix(uint64(base) + uint64(n+1)*goldenRatio64))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
