// SPDX-License-Identifier: MIT
// Package: redistrict/seed
//
// select.go - ranked-extreme seed selection.
//
// Contract:
//   - Returns packA+packB distinct unit indices: side-A picks (lowest lean)
//     first, then side-B picks (highest lean).
//   - Ties keep input order (stable sort).
//   - A unit picked for side A is skipped on the side-B pass.
//
// Complexity: O(V log V) for the two stable sorts.

package seed

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/redistrict/precinct"
)

// Select returns the seed units for packA side-A districts followed by
// packB side-B districts.
func Select(g *precinct.Graph, lean LeanFunc, packA, packB int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if packA < 0 || packB < 0 {
		return nil, fmt.Errorf("%w: pack_a=%d, pack_b=%d", ErrSeedCounts, packA, packB)
	}
	n := g.Len()
	if packA+packB > n {
		return nil, fmt.Errorf("%w: %d districts, %d units", ErrTooManySeeds, packA+packB, n)
	}
	if lean == nil {
		lean = LeanBMinusA
	}

	scores := Scores(g, lean)
	ascending := make([]int, n)
	for i := range ascending {
		ascending[i] = i
	}
	descending := make([]int, n)
	copy(descending, ascending)

	sort.SliceStable(ascending, func(i, j int) bool {
		return scores[ascending[i]] < scores[ascending[j]]
	})
	sort.SliceStable(descending, func(i, j int) bool {
		return scores[descending[i]] > scores[descending[j]]
	})

	seeds := make([]int, 0, packA+packB)
	picked := make(map[int]struct{}, packA+packB)
	take := func(order []int, want int) {
		for _, u := range order {
			if want == 0 {
				return
			}
			if _, dup := picked[u]; dup {
				continue
			}
			picked[u] = struct{}{}
			seeds = append(seeds, u)
			want--
		}
	}
	take(ascending, packA)
	take(descending, packB)

	return seeds, nil
}
