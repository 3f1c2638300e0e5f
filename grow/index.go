// SPDX-License-Identifier: MIT
// Package: redistrict/grow
//
// index.go - ordered sets of unassigned units for graph-wide reseeding.
//
// Two trees hold the same entries: one ordered by descending score, one by
// ascending score, both breaking ties by input order. Assigning a unit
// removes it from both, so the best unassigned unit is found without
// scanning the graph.

package grow

import "github.com/tidwall/btree"

type entry struct {
	score float64
	unit  int
}

func highFirst(a, b entry) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.unit < b.unit
}

func lowFirst(a, b entry) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.unit < b.unit
}

type reseedIndex struct {
	high *btree.BTreeG[entry]
	low  *btree.BTreeG[entry]
}

func newReseedIndex(scores []float64) *reseedIndex {
	ix := &reseedIndex{
		high: btree.NewBTreeG[entry](highFirst),
		low:  btree.NewBTreeG[entry](lowFirst),
	}
	for u, s := range scores {
		ix.high.Set(entry{score: s, unit: u})
		ix.low.Set(entry{score: s, unit: u})
	}
	return ix
}

func (ix *reseedIndex) remove(u int, score float64) {
	e := entry{score: score, unit: u}
	ix.high.Delete(e)
	ix.low.Delete(e)
}

func (ix *reseedIndex) len() int { return ix.high.Len() }

// best returns the first unit in preference order accepted by fits, or -1.
func (ix *reseedIndex) best(inverted bool, fits func(u int) bool) int {
	tree := ix.high
	if inverted {
		tree = ix.low
	}
	found := -1
	tree.Scan(func(e entry) bool {
		if fits(e.unit) {
			found = e.unit
			return false
		}
		return true
	})
	return found
}

// ordered lists the remaining units, best score first.
func (ix *reseedIndex) ordered() []int {
	out := make([]int, 0, ix.high.Len())
	ix.high.Scan(func(e entry) bool {
		out = append(out, e.unit)
		return true
	})
	return out
}
