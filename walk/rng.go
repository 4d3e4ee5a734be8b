// Package walk - per-row random streams.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix, whatever the worker count.
//   - Independence: each row owns a PCG stream keyed by its row index, so
//     no generator state is shared between goroutines.
//   - Cheap setup: a PCG state is two words, fine to create per row.
package walk

import "math/rand/v2"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultSeed int64 = 1

// mixSeed runs a SplitMix64 finalizer over seed so that neighboring user
// seeds give unrelated streams. seed==0 ⇒ defaultSeed.
// Complexity: O(1).
func mixSeed(seed int64) uint64 {
	if seed == 0 {
		seed = defaultSeed
	}
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// rowRNG returns the stream owned by row.
// Complexity: O(1).
func rowRNG(base uint64, row int) *rand.Rand {
	return rand.New(rand.NewPCG(base, uint64(row)))
}
