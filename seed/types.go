// SPDX-License-Identifier: MIT
// Package: redistrict/seed
//
// types.go - lean functions and sentinel errors.
//
// Sign convention: a larger lean means "more toward side B". Side-A seeds
// are therefore drawn from the lowest scores, side-B seeds from the highest.

package seed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/redistrict/precinct"
)

// Sentinel errors for seed selection.
var (
	// ErrGraphNil is returned when the graph is nil.
	ErrGraphNil = errors.New("seed: graph is nil")

	// ErrSeedCounts is returned when a pack count is negative.
	ErrSeedCounts = errors.New("seed: pack counts must be non-negative")

	// ErrTooManySeeds is returned when more seeds are requested than units exist.
	ErrTooManySeeds = errors.New("seed: more districts than units")

	// ErrUnknownLean is returned by ParseLean for an unrecognized name.
	ErrUnknownLean = errors.New("seed: unknown lean function")
)

// LeanFunc scores a unit; higher means more favorable to side B.
type LeanFunc func(u precinct.Unit) float64

// LeanBMinusA is tally_b − tally_a.
func LeanBMinusA(u precinct.Unit) float64 { return float64(u.TallyB - u.TallyA) }

// LeanAMinusB is tally_a − tally_b. It flips which side each pack draws from.
func LeanAMinusB(u precinct.Unit) float64 { return float64(u.TallyA - u.TallyB) }

// ShareB is side B's share of the two-party total in basis points
// (0..10000); 5000 when both tallies are zero.
func ShareB(u precinct.Unit) float64 {
	total := u.TallyA + u.TallyB
	if total == 0 {
		return 5000
	}
	return float64(u.TallyB) * 10000 / float64(total)
}

// Lean names accepted by ParseLean and used in configuration files.
const (
	NameBMinusA = "b_minus_a"
	NameAMinusB = "a_minus_b"
	NameShareB  = "share_b"
)

// ParseLean resolves a configured lean name; "" selects b_minus_a.
func ParseLean(name string) (LeanFunc, error) {
	switch name {
	case "", NameBMinusA:
		return LeanBMinusA, nil
	case NameAMinusB:
		return LeanAMinusB, nil
	case NameShareB:
		return ShareB, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLean, name)
	}
}

// Scores evaluates lean over every unit of g in input order.
// Complexity: O(V).
func Scores(g *precinct.Graph, lean LeanFunc) []float64 {
	out := make([]float64, g.Len())
	for i := range out {
		out[i] = lean(g.Unit(i))
	}
	return out
}
