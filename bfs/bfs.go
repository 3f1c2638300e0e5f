// SPDX-License-Identifier: MIT
// Package: redistrict/bfs
//
// bfs.go - breadth-first search returning the visit order.
//
// The visited set is a map rather than a []bool of length V: contiguity
// checks walk one district at a time, so the cost stays proportional to the
// subset instead of the whole graph.

package bfs

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    Options
	queue   []int
	head    int
	visited map[int]struct{}
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options and ErrVisitLimit when MaxVisits is
// exceeded. On ErrVisitLimit the partial result is returned alongside the
// error.
//
// Complexity: O(V + E) time, O(V) space; O(|reached| + incident edges)
// when a filter restricts the walk.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, 16),
		visited: make(map[int]struct{}),
		res:     &Result{Order: make([]int, 0, 16)},
	}
	w.enqueue(start)

	return w.res, w.loop()
}

// enqueue marks id visited and queues it.
func (w *walker) enqueue(id int) {
	w.visited[id] = struct{}{}
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or the visit limit.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		id := w.queue[w.head]
		w.head++

		if w.opts.MaxVisits > 0 && len(w.res.Order) >= w.opts.MaxVisits {
			return fmt.Errorf("%w: %d", ErrVisitLimit, w.opts.MaxVisits)
		}
		w.res.Order = append(w.res.Order, id)

		for _, nbr := range w.graph.Neighbors(id) {
			if _, seen := w.visited[nbr]; seen || !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			w.enqueue(nbr)
		}
	}
	return nil
}
