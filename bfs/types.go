// SPDX-License-Identifier: MIT
// Package: redistrict/bfs
//
// types.go - options and sentinel errors for breadth-first search over
// dense-indexed graphs.

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitLimit is returned when the traversal would visit more than
	// MaxVisits vertices.
	ErrVisitLimit = errors.New("bfs: visit limit exceeded")
)

// Graph is the read-only view BFS needs: a vertex count and sorted
// neighbor lists over dense indices 0..Len()-1.
// *precinct.Graph satisfies it.
type Graph interface {
	Len() int
	Neighbors(i int) []int
}

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds the parameters of a traversal.
type Options struct {
	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor int) bool

	// MaxVisits, if > 0, aborts with ErrVisitLimit once more vertices than
	// this would be visited; 0 means no limit.
	MaxVisits int

	err error
}

// DefaultOptions returns Options with no limit and no filtering.
func DefaultOptions() Options {
	return Options{
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxVisits bounds the number of visited vertices.
//
//	n > 0: abort with ErrVisitLimit past n visits
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// Result holds the vertices reached by a traversal in visit sequence.
type Result struct {
	Order []int
}
