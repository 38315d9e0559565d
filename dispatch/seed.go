// SPDX-License-Identifier: MIT
//
// File: seed.go
// Role: Deterministic per-worker seeds.
//
// Policy:
//   - base==0 ⇒ defaultSeed; otherwise the base is used verbatim.
//   - Worker w of a run gets deriveSeed(base, w); fixed (base, workers)
//     therefore always yields the same streams on every platform.
//   - math/rand.Rand is NOT goroutine-safe: each worker builds its own.

package dispatch

import "math/rand"

// defaultSeed replaces a zero base seed.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring worker ids get uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// WorkerSeeds returns the seeds Dispatch hands to n workers for base.
func WorkerSeeds(base int64, n int) []int64 {
	if base == 0 {
		base = defaultSeed
	}
	out := make([]int64, n)
	for w := range out {
		out[w] = deriveSeed(base, uint64(w))
	}

	return out
}

// Rand returns a private random stream seeded with a.Seed.
func (a Assignment) Rand() *rand.Rand {
	return rand.New(rand.NewSource(a.Seed))
}
