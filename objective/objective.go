// SPDX-License-Identifier: MIT
// Package: redistrict/objective
//
// objective.go - per-district tallies, winners and seat counts.
//
// Evaluate and Seats are pure functions of (graph, assignment): calling them
// twice on the same input yields identical results.

package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
)

// Sentinel errors for evaluation.
var (
	ErrGraphNil      = errors.New("objective: graph is nil")
	ErrLength        = errors.New("objective: assignment length does not match unit count")
	ErrDistrictRange = errors.New("objective: district index out of range")
	ErrUnknownSide   = errors.New("objective: unknown side")
	ErrUnknownTie    = errors.New("objective: unknown tie rule")
)

// Side identifies a competitor, or nobody.
type Side int

const (
	// SideNone wins nothing: an exact tie under TieNone, or an empty district.
	SideNone Side = iota
	SideA
	SideB
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return "none"
	}
}

// ParseSide accepts "a" or "b".
func ParseSide(s string) (Side, error) {
	switch s {
	case "a":
		return SideA, nil
	case "b":
		return SideB, nil
	}
	return SideNone, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// TieRule decides who wins a district with equal tallies.
type TieRule int

const (
	// TieNone counts a tie for neither side.
	TieNone TieRule = iota
	// TieSideA awards ties to side A.
	TieSideA
	// TieSideB awards ties to side B.
	TieSideB
)

// ParseTieRule accepts "none" (or ""), "a" and "b".
func ParseTieRule(s string) (TieRule, error) {
	switch s {
	case "", "none":
		return TieNone, nil
	case "a":
		return TieSideA, nil
	case "b":
		return TieSideB, nil
	}
	return TieNone, fmt.Errorf("%w: %q", ErrUnknownTie, s)
}

// DistrictTally is the aggregated view of one district.
type DistrictTally struct {
	Population int64
	TallyA     int64
	TallyB     int64
	Units      int
	Winner     Side
}

// Evaluation is the full breakdown for one assignment.
type Evaluation struct {
	Districts []DistrictTally
	SeatsA    int
	SeatsB    int
	Ties      int
	// Target is the number of seats won by the evaluator's target side.
	Target int
}

// Evaluator counts seats for a target side under a tie rule.
type Evaluator struct {
	g      *precinct.Graph
	k      int
	target Side
	tie    TieRule
}

// New returns an Evaluator for k districts over g.
func New(g *precinct.Graph, k int, target Side, tie TieRule) (*Evaluator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrDistrictRange, k)
	}
	if target != SideA && target != SideB {
		return nil, fmt.Errorf("%w: target %d", ErrUnknownSide, int(target))
	}
	if tie < TieNone || tie > TieSideB {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTie, int(tie))
	}
	return &Evaluator{g: g, k: k, target: target, tie: tie}, nil
}

// Target returns the side whose seats are maximized.
func (e *Evaluator) Target() Side { return e.target }

// Winner applies the strict majority and the tie rule. Districts with no
// votes at all are ties.
func (e *Evaluator) Winner(a, b int64) Side {
	switch {
	case a > b:
		return SideA
	case b > a:
		return SideB
	case e.tie == TieSideA:
		return SideA
	case e.tie == TieSideB:
		return SideB
	default:
		return SideNone
	}
}

// Evaluate aggregates a total assignment.
// Complexity: O(V + k).
func (e *Evaluator) Evaluate(a partition.Assignment) (Evaluation, error) {
	if err := e.check(a); err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{Districts: make([]DistrictTally, e.k)}
	for u, d := range a {
		unit := e.g.Unit(u)
		t := &ev.Districts[d]
		t.Population += unit.Population
		t.TallyA += unit.TallyA
		t.TallyB += unit.TallyB
		t.Units++
	}
	for d := range ev.Districts {
		t := &ev.Districts[d]
		t.Winner = e.Winner(t.TallyA, t.TallyB)
		switch t.Winner {
		case SideA:
			ev.SeatsA++
		case SideB:
			ev.SeatsB++
		}
		if t.TallyA == t.TallyB {
			ev.Ties++
		}
	}
	ev.Target = ev.SeatsB
	if e.target == SideA {
		ev.Target = ev.SeatsA
	}
	return ev, nil
}

// Seats returns only the target side's seat count. It reuses scratch (grown
// as needed) for the per-district sums and returns it for the next call.
// Complexity: O(V + k).
func (e *Evaluator) Seats(a partition.Assignment, scratch []int64) (int, []int64) {
	if cap(scratch) < 2*e.k {
		scratch = make([]int64, 2*e.k)
	}
	scratch = scratch[:2*e.k]
	for i := range scratch {
		scratch[i] = 0
	}
	for u, d := range a {
		if d < 0 {
			continue
		}
		unit := e.g.Unit(u)
		scratch[2*d] += unit.TallyA
		scratch[2*d+1] += unit.TallyB
	}
	seats := 0
	for d := 0; d < e.k; d++ {
		if e.Winner(scratch[2*d], scratch[2*d+1]) == e.target {
			seats++
		}
	}
	return seats, scratch
}

func (e *Evaluator) check(a partition.Assignment) error {
	if len(a) != e.g.Len() {
		return fmt.Errorf("%w: %d of %d", ErrLength, len(a), e.g.Len())
	}
	for u, d := range a {
		if d < 0 || d >= e.k {
			return fmt.Errorf("%w: unit %q → %d", ErrDistrictRange, e.g.ID(u), d)
		}
	}
	return nil
}
