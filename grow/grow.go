// SPDX-License-Identifier: MIT
// Package: redistrict/grow
//
// grow.go - frontier-based region growing under a population ceiling.
//
// Algorithm:
//  1. Each seed starts its district; its unassigned neighbors join the
//     district's frontier.
//  2. Rounds visit districts in index order. A district below the ceiling
//     takes the best-scoring frontier unit whose population still fits
//     (first seen wins ties). A district with an empty frontier reseeds
//     from the best unassigned unit anywhere that fits; if none fits the
//     district is closed.
//  3. A round without any placement ends growth. Remaining units are
//     force-placed one by one, best score first, into the least populated
//     district with room, adjacent districts first.
//
// Complexity: O(R·F) frontier scans for R rounds and frontier size F, plus
// O(log V) per index update.

package grow

import (
	"fmt"

	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
)

type engine struct {
	s        *partition.State
	g        *precinct.Graph
	band     partition.Band
	scores   []float64
	opts     Options
	ix       *reseedIndex
	frontier [][]int
	queued   []map[int]struct{}
	closed   []bool
	res      Result
}

// Grow assigns every unit of the empty state s to a district, starting from
// one seed per district. scores ranks units (nil means all equal); the
// ceiling is band.Max.
//
// The state is mutated in place. On error it is left partially assigned and
// must be discarded.
func Grow(s *partition.State, seeds []int, band partition.Band, scores []float64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if s == nil {
		return Result{}, ErrStateNil
	}
	if s.AssignedCount() != 0 {
		return Result{}, fmt.Errorf("%w: %d units assigned", ErrStateNotEmpty, s.AssignedCount())
	}

	g := s.Graph()
	n, k := g.Len(), s.NumDistricts()
	if scores == nil {
		scores = make([]float64, n)
	}
	if len(scores) != n {
		return Result{}, fmt.Errorf("%w: %d scores, %d units", ErrScores, len(scores), n)
	}
	if err := checkSeeds(seeds, n, k); err != nil {
		return Result{}, err
	}

	e := &engine{
		s:        s,
		g:        g,
		band:     band,
		scores:   scores,
		opts:     o,
		ix:       newReseedIndex(scores),
		frontier: make([][]int, k),
		queued:   make([]map[int]struct{}, k),
		closed:   make([]bool, k),
	}
	for d := range e.queued {
		e.queued[d] = make(map[int]struct{})
	}

	for d, u := range seeds {
		if !band.Fits(0, g.Unit(u).Population) {
			if !o.Overflow {
				return e.res, fmt.Errorf("%w: seed %q", ErrCapacityExhausted, g.ID(u))
			}
			e.res.Overflowed = append(e.res.Overflowed, u)
		}
		if err := e.place(u, d, PlaceSeed); err != nil {
			return e.res, err
		}
	}

	if err := e.rounds(); err != nil {
		return e.res, err
	}
	if err := e.force(); err != nil {
		return e.res, err
	}

	e.res.Populations = s.Populations()
	return e.res, nil
}

func checkSeeds(seeds []int, n, k int) error {
	if len(seeds) != k {
		return fmt.Errorf("%w: %d seeds for %d districts", ErrSeeds, len(seeds), k)
	}
	seen := make(map[int]struct{}, k)
	for _, u := range seeds {
		if u < 0 || u >= n {
			return fmt.Errorf("%w: unit %d out of range", ErrSeeds, u)
		}
		if _, dup := seen[u]; dup {
			return fmt.Errorf("%w: unit %d used twice", ErrSeeds, u)
		}
		seen[u] = struct{}{}
	}
	return nil
}

// place assigns u to d, updates the index and extends d's frontier.
func (e *engine) place(u, d int, kind Placement) error {
	if err := e.s.Assign(u, d); err != nil {
		return err
	}
	e.ix.remove(u, e.scores[u])

	switch kind {
	case PlaceReseed:
		e.res.Reseeded = append(e.res.Reseeded, u)
	case PlaceForced:
		e.res.Forced = append(e.res.Forced, u)
	case PlaceOverflow:
		e.res.Forced = append(e.res.Forced, u)
		e.res.Overflowed = append(e.res.Overflowed, u)
	}

	for _, v := range e.g.Neighbors(u) {
		if e.s.District(v) != partition.Unassigned {
			continue
		}
		if _, ok := e.queued[d][v]; ok {
			continue
		}
		e.queued[d][v] = struct{}{}
		e.frontier[d] = append(e.frontier[d], v)
	}

	if e.opts.OnAssign != nil {
		e.opts.OnAssign(u, d, kind)
	}
	return nil
}

// full reports whether d has reached the ceiling.
func (e *engine) full(d int) bool {
	return e.band.Max > 0 && float64(e.s.Population(d)) >= e.band.Max
}

func (e *engine) fits(d int) func(u int) bool {
	pop := e.s.Population(d)
	return func(u int) bool { return e.band.Fits(pop, e.g.Unit(u).Population) }
}

// compact drops already assigned units from d's frontier, keeping order.
func (e *engine) compact(d int) {
	live := e.frontier[d][:0]
	for _, v := range e.frontier[d] {
		if e.s.District(v) == partition.Unassigned {
			live = append(live, v)
			continue
		}
		delete(e.queued[d], v)
	}
	e.frontier[d] = live
}

// pick returns the best fitting frontier unit of d, or -1.
func (e *engine) pick(d int) int {
	fits := e.fits(d)
	inv := e.opts.Inverted[d]
	best := -1
	for _, v := range e.frontier[d] {
		if !fits(v) {
			continue
		}
		if best < 0 {
			best = v
			continue
		}
		if (inv && e.scores[v] < e.scores[best]) || (!inv && e.scores[v] > e.scores[best]) {
			best = v
		}
	}
	return best
}

func (e *engine) rounds() error {
	n, k := e.g.Len(), e.s.NumDistricts()
	for e.s.AssignedCount() < n {
		if err := e.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("grow: %w", err)
		}
		e.res.Rounds++
		progress := false

		for d := 0; d < k && e.s.AssignedCount() < n; d++ {
			if e.closed[d] || e.full(d) {
				continue
			}
			e.compact(d)
			if len(e.frontier[d]) == 0 {
				u := e.ix.best(e.opts.Inverted[d], e.fits(d))
				if u < 0 {
					e.closed[d] = true
					e.res.Closed = append(e.res.Closed, d)
					continue
				}
				if err := e.place(u, d, PlaceReseed); err != nil {
					return err
				}
				progress = true
				if e.full(d) {
					continue
				}
			}
			if u := e.pick(d); u >= 0 {
				if err := e.place(u, d, PlaceFrontier); err != nil {
					return err
				}
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	return nil
}

// force places every unit growth could not reach.
func (e *engine) force() error {
	if e.ix.len() == 0 {
		return nil
	}
	for _, u := range e.ix.ordered() {
		p := e.g.Unit(u).Population
		adjacent := make(map[int]bool)
		for _, v := range e.g.Neighbors(u) {
			if d := e.s.District(v); d != partition.Unassigned {
				adjacent[d] = true
			}
		}

		d := e.lightest(func(d int) bool { return adjacent[d] && e.band.Fits(e.s.Population(d), p) })
		if d < 0 {
			d = e.lightest(func(d int) bool { return e.band.Fits(e.s.Population(d), p) })
		}
		kind := PlaceForced
		if d < 0 {
			if !e.opts.Overflow {
				return fmt.Errorf("%w: unit %q (population %d)", ErrCapacityExhausted, e.g.ID(u), p)
			}
			kind = PlaceOverflow
			if d = e.lightest(func(d int) bool { return adjacent[d] }); d < 0 {
				d = e.lightest(func(int) bool { return true })
			}
		}
		if err := e.place(u, d, kind); err != nil {
			return err
		}
	}
	return nil
}

// lightest returns the least populated district accepted by ok (lowest
// index on ties), or -1.
func (e *engine) lightest(ok func(d int) bool) int {
	best := -1
	for d := 0; d < e.s.NumDistricts(); d++ {
		if !ok(d) {
			continue
		}
		if best < 0 || e.s.Population(d) < e.s.Population(best) {
			best = d
		}
	}
	return best
}
