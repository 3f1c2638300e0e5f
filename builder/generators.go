// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// generators.go - stock population and tally generators.
//
// Stochastic generators fall back to their lower bound when no RNG is
// configured, so a builder without WithSeed stays fully deterministic.

package builder

import (
	"fmt"
	"math/rand"
)

// ConstPopulation gives every unit population p.
func ConstPopulation(p int64) PopulationFn {
	return func(int, *rand.Rand) int64 { return p }
}

// UniformPopulation draws populations uniformly from [lo, hi].
// Panics with ErrInvalidRange when lo < 0 or lo > hi.
func UniformPopulation(lo, hi int64) PopulationFn {
	if lo < 0 || lo > hi {
		panic(fmt.Errorf("UniformPopulation(%d, %d): %w", lo, hi, ErrInvalidRange))
	}
	return func(_ int, rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}

// ConstTallies gives every unit the tallies (a, b).
func ConstTallies(a, b int64) TallyFn {
	return func(int, *rand.Rand) (int64, int64) { return a, b }
}

// RandomTallies draws a turnout uniformly from [0, maxTotal] and splits it
// with a uniform share for side A. Without an RNG every unit gets (0, 0).
// Panics with ErrInvalidRange when maxTotal < 0.
func RandomTallies(maxTotal int64) TallyFn {
	if maxTotal < 0 {
		panic(fmt.Errorf("RandomTallies(%d): %w", maxTotal, ErrInvalidRange))
	}
	return func(_ int, rng *rand.Rand) (int64, int64) {
		if rng == nil || maxTotal == 0 {
			return 0, 0
		}
		total := rng.Int63n(maxTotal + 1)
		a := int64(float64(total) * rng.Float64())
		return a, total - a
	}
}

// TalliesByIndex returns explicit tallies for the listed indices and (0, 0)
// for every other unit; handy for hand-written fixtures.
func TalliesByIndex(m map[int][2]int64) TallyFn {
	return func(i int, _ *rand.Rand) (int64, int64) {
		t := m[i]
		return t[0], t[1]
	}
}
