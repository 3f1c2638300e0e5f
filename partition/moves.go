// SPDX-License-Identifier: MIT
// Package: redistrict/partition
//
// moves.go - enumeration of boundary reassignment candidates.

package partition

// Move is a candidate reassignment of Unit from district From to district
// To, justified by its graph neighbor Neighbor that already sits in To.
type Move struct {
	Unit     int
	From     int
	Neighbor int
	To       int
}

// BorderMoves appends to buf one Move per (unit, neighbor) pair whose
// districts differ and returns the extended slice. A unit with several
// foreign neighbors appears once per neighbor, so units with longer
// boundaries are proportionally more likely to be drawn.
// Order: ascending unit, then ascending neighbor.
// Complexity: O(V + E).
func (s *State) BorderMoves(buf []Move) []Move {
	for u, d := range s.assign {
		if d == Unassigned {
			continue
		}
		for _, v := range s.g.Neighbors(u) {
			nd := s.assign[v]
			if nd != Unassigned && nd != d {
				buf = append(buf, Move{Unit: u, From: d, Neighbor: v, To: nd})
			}
		}
	}
	return buf
}

// IsBorder reports whether u has a neighbor in another district.
func (s *State) IsBorder(u int) bool {
	d := s.assign[u]
	if d == Unassigned {
		return false
	}
	for _, v := range s.g.Neighbors(u) {
		if nd := s.assign[v]; nd != Unassigned && nd != d {
			return true
		}
	}
	return false
}
