// SPDX-License-Identifier: MIT
// Package: redistrict/partition
//
// state.go - PartitionState: the assignment, per-district member sets and
// per-district population totals, kept consistent with each other.
//
// Ownership:
//   - A State is owned by exactly one running engine (growth, then local
//     search). It is not safe for concurrent use; callers that expose it as
//     a service must serialize access per run.
//   - Districts are never stored separately from the assignment: members and
//     populations are updated in the same call that changes the assignment.

package partition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/precinct"
)

// Unassigned marks a unit that belongs to no district yet.
const Unassigned = -1

// Sentinel errors for partition state operations.
var (
	ErrGraphNil        = errors.New("partition: graph is nil")
	ErrDistrictCount   = errors.New("partition: district count must be positive and not exceed unit count")
	ErrDistrictRange   = errors.New("partition: district index out of range")
	ErrUnitRange       = errors.New("partition: unit index out of range")
	ErrAlreadyAssigned = errors.New("partition: unit already assigned")
	ErrNotAssigned     = errors.New("partition: unit not assigned")
	ErrIncomplete      = errors.New("partition: assignment is not total")
)

// Assignment maps dense unit index → district index.
type Assignment []int

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// Map resolves the assignment to unit ID → district.
func (a Assignment) Map(g *precinct.Graph) map[string]int {
	out := make(map[string]int, len(a))
	for i, d := range a {
		out[g.ID(i)] = d
	}
	return out
}

// State is the mutable partition owned by a running engine.
type State struct {
	g        *precinct.Graph
	k        int
	assign   Assignment
	members  []map[int]struct{}
	pop      []int64
	assigned int
}

// New returns an empty State for k districts over g.
// Returns ErrGraphNil or ErrDistrictCount.
func New(g *precinct.Graph, k int) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k <= 0 || k > g.Len() {
		return nil, fmt.Errorf("%w: k=%d, units=%d", ErrDistrictCount, k, g.Len())
	}
	s := &State{
		g:       g,
		k:       k,
		assign:  make(Assignment, g.Len()),
		members: make([]map[int]struct{}, k),
		pop:     make([]int64, k),
	}
	for i := range s.assign {
		s.assign[i] = Unassigned
	}
	for d := range s.members {
		s.members[d] = make(map[int]struct{})
	}
	return s, nil
}

// FromAssignment rebuilds a State from a total assignment.
// Returns ErrIncomplete when a unit is unassigned and ErrDistrictRange when
// an index falls outside [0, k).
func FromAssignment(g *precinct.Graph, k int, a Assignment) (*State, error) {
	s, err := New(g, k)
	if err != nil {
		return nil, err
	}
	if len(a) != g.Len() {
		return nil, fmt.Errorf("%w: %d of %d units", ErrIncomplete, len(a), g.Len())
	}
	for u, d := range a {
		if d == Unassigned {
			return nil, fmt.Errorf("%w: unit %q", ErrIncomplete, g.ID(u))
		}
		if err = s.Assign(u, d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Graph returns the underlying precinct graph.
func (s *State) Graph() *precinct.Graph { return s.g }

// NumDistricts returns k.
func (s *State) NumDistricts() int { return s.k }

// Assign places an unassigned unit u into district d.
func (s *State) Assign(u, d int) error {
	if u < 0 || u >= len(s.assign) {
		return fmt.Errorf("%w: %d", ErrUnitRange, u)
	}
	if d < 0 || d >= s.k {
		return fmt.Errorf("%w: %d", ErrDistrictRange, d)
	}
	if s.assign[u] != Unassigned {
		return fmt.Errorf("%w: %q in %d", ErrAlreadyAssigned, s.g.ID(u), s.assign[u])
	}
	s.assign[u] = d
	s.members[d][u] = struct{}{}
	s.pop[d] += s.g.Unit(u).Population
	s.assigned++
	return nil
}

// Move reassigns an assigned unit u to district to and returns its previous
// district. Moving to the current district is a no-op.
// Complexity: O(1).
func (s *State) Move(u, to int) (int, error) {
	if u < 0 || u >= len(s.assign) {
		return Unassigned, fmt.Errorf("%w: %d", ErrUnitRange, u)
	}
	if to < 0 || to >= s.k {
		return Unassigned, fmt.Errorf("%w: %d", ErrDistrictRange, to)
	}
	from := s.assign[u]
	if from == Unassigned {
		return Unassigned, fmt.Errorf("%w: %q", ErrNotAssigned, s.g.ID(u))
	}
	if from == to {
		return from, nil
	}
	p := s.g.Unit(u).Population
	s.assign[u] = to
	delete(s.members[from], u)
	s.members[to][u] = struct{}{}
	s.pop[from] -= p
	s.pop[to] += p
	return from, nil
}

// District returns the district of u, or Unassigned.
func (s *State) District(u int) int { return s.assign[u] }

// IsMember reports whether u currently belongs to district d.
func (s *State) IsMember(d, u int) bool {
	_, ok := s.members[d][u]
	return ok
}

// Population returns the population of district d.
func (s *State) Population(d int) int64 { return s.pop[d] }

// Populations returns a copy of all district populations.
func (s *State) Populations() []int64 {
	out := make([]int64, s.k)
	copy(out, s.pop)
	return out
}

// Size returns the number of units in district d.
func (s *State) Size(d int) int { return len(s.members[d]) }

// Members returns the units of district d in ascending order.
// Complexity: O(m log m) for m members.
func (s *State) Members(d int) []int {
	out := make([]int, 0, len(s.members[d]))
	for u := range s.members[d] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// AssignedCount returns how many units have a district.
func (s *State) AssignedCount() int { return s.assigned }

// Complete reports whether every unit has a district.
func (s *State) Complete() bool { return s.assigned == len(s.assign) }

// Assignment returns a copy of the current assignment.
func (s *State) Assignment() Assignment { return s.assign.Clone() }

// View returns the live assignment without copying. Callers must treat it as
// read-only and must not retain it across mutations they do not own.
func (s *State) View() Assignment { return s.assign }

// Clone returns a deep copy sharing only the immutable graph.
// Complexity: O(V).
func (s *State) Clone() *State {
	c := &State{
		g:        s.g,
		k:        s.k,
		assign:   s.assign.Clone(),
		members:  make([]map[int]struct{}, s.k),
		pop:      make([]int64, s.k),
		assigned: s.assigned,
	}
	copy(c.pop, s.pop)
	for d, m := range s.members {
		c.members[d] = make(map[int]struct{}, len(m))
		for u := range m {
			c.members[d][u] = struct{}{}
		}
	}
	return c
}

// Components returns the number of connected pieces of district d.
// An empty district has zero pieces.
func (s *State) Components(d int) (int, error) {
	return s.ComponentsAfter(d, Unassigned, Unassigned, 0)
}

// ComponentsAfter counts the connected pieces district d would have if
// remove left it and add joined it (either may be Unassigned to skip).
// The state is not modified. maxVisits bounds the traversal
// (0 = unbounded) and surfaces as bfs.ErrVisitLimit.
// Complexity: O(|d| + edges incident to d).
func (s *State) ComponentsAfter(d, remove, add, maxVisits int) (int, error) {
	member := func(v int) bool {
		if v == remove {
			return false
		}
		if v == add {
			return true
		}
		_, ok := s.members[d][v]
		return ok
	}
	candidates := make([]int, 0, len(s.members[d])+1)
	for u := range s.members[d] {
		candidates = append(candidates, u)
	}
	if add != Unassigned {
		candidates = append(candidates, add)
	}
	// visit budgets must hit the same units on every run
	sort.Ints(candidates)
	return bfs.CountComponents(s.g, candidates, member, maxVisits)
}

// ConnectedAfter reports whether district d would form a single piece if
// remove left it and add joined it (either may be Unassigned to skip). An
// empty result counts as connected. The state is not modified. maxVisits
// bounds the traversal (0 = unbounded) and surfaces as bfs.ErrVisitLimit.
// Complexity: O(|d| + edges incident to d).
func (s *State) ConnectedAfter(d, remove, add, maxVisits int) (bool, error) {
	m := s.members[d]
	member := func(v int) bool {
		if v == remove {
			return false
		}
		if v == add {
			return true
		}
		_, ok := m[v]
		return ok
	}

	size := len(m)
	if _, ok := m[remove]; ok && remove != Unassigned {
		size--
	}
	if _, ok := m[add]; !ok && add != Unassigned && add != remove {
		size++
	}

	// the lowest remaining member keeps the walk reproducible
	start := Unassigned
	if add != Unassigned && add != remove {
		start = add
	}
	for u := range m {
		if u != remove && (start == Unassigned || u < start) {
			start = u
		}
	}
	if start == Unassigned {
		return true, nil
	}
	return bfs.Connected(s.g, member, start, size, maxVisits)
}
