// SPDX-License-Identifier: MIT
// Package: redistrict/anneal
//
// rng.go - deterministic random source for move selection and acceptance.
//
// Policy:
//   - Same seed ⇒ identical run on every platform.
//   - seed==0 selects defaultRNGSeed; no time-based sources anywhere.
//   - *rand.Rand is not goroutine-safe; each Optimize call owns its stream.

package anneal

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
