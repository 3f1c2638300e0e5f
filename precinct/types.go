// SPDX-License-Identifier: MIT
// Package: redistrict/precinct
//
// types.go - Unit, Graph, Option and the sentinel errors of the package.
//
// Design:
//   - A Graph is built once (Builder or FromAdjacency) and is read-only afterwards.
//   - Units are stored densely in insertion order; the dense index is the
//     "input order" every deterministic tie rule in this module relies on.
//   - Neighbor lists are deduplicated and sorted ascending.
//
// Errors:
//
//	ErrGraphIntegrity   - root of every structural problem below.
//	ErrEmptyUnitID      - unit ID is the empty string.
//	ErrDuplicateUnit    - unit ID declared twice.
//	ErrNegativeCount    - population or tally below zero.
//	ErrUnknownUnit      - edge endpoint was never declared.
//	ErrSelfLoop         - edge from a unit to itself.
//	ErrAsymmetricEdge   - a→b declared without b→a.
//	ErrDisconnected     - graph has more than one connected component.
//	ErrEmptyGraph       - graph has no units.
package precinct

import (
	"errors"
	"fmt"
)

// ErrGraphIntegrity is the root of all graph-integrity failures; every
// structural sentinel below wraps it, so errors.Is(err, ErrGraphIntegrity)
// classifies them as one family.
var ErrGraphIntegrity = errors.New("precinct: graph integrity violation")

// Sentinel errors for graph construction and validation.
var (
	ErrEmptyUnitID    = fmt.Errorf("%w: unit ID is empty", ErrGraphIntegrity)
	ErrDuplicateUnit  = fmt.Errorf("%w: duplicate unit", ErrGraphIntegrity)
	ErrNegativeCount  = fmt.Errorf("%w: negative population or tally", ErrGraphIntegrity)
	ErrUnknownUnit    = fmt.Errorf("%w: unknown unit", ErrGraphIntegrity)
	ErrSelfLoop       = fmt.Errorf("%w: self-loop", ErrGraphIntegrity)
	ErrAsymmetricEdge = fmt.Errorf("%w: asymmetric adjacency", ErrGraphIntegrity)
	ErrDisconnected   = fmt.Errorf("%w: graph is disconnected", ErrGraphIntegrity)
	ErrEmptyGraph     = fmt.Errorf("%w: graph has no units", ErrGraphIntegrity)
)

// Unit is an atomic geographic cell: a precinct, VTD or block.
// Population and both tallies are non-negative.
type Unit struct {
	// ID uniquely identifies the unit (e.g. a GEOID).
	ID string

	// Population is the head count used for balancing districts.
	Population int64

	// TallyA and TallyB are the two competing counts (e.g. party votes).
	TallyA int64
	TallyB int64
}

// Validate reports ErrEmptyUnitID or ErrNegativeCount for malformed units.
func (u Unit) Validate() error {
	if u.ID == "" {
		return ErrEmptyUnitID
	}
	if u.Population < 0 || u.TallyA < 0 || u.TallyB < 0 {
		return fmt.Errorf("%w: unit %q", ErrNegativeCount, u.ID)
	}

	return nil
}

// Graph is an immutable undirected adjacency graph over Units.
//
// Invariants: no self-loops, symmetric adjacency, neighbor lists sorted
// ascending without duplicates. All accessors are O(1) unless noted.
type Graph struct {
	units    []Unit         // dense index → unit
	index    map[string]int // unit ID → dense index
	adj      [][]int        // dense index → sorted neighbor indices
	edges    int            // number of undirected edges
	totalPop int64          // Σ population
}

// Options configures adjacency import.
type Options struct {
	// Symmetrize repairs one-directional adjacency entries by adding the
	// missing reverse edge instead of failing with ErrAsymmetricEdge.
	Symmetrize bool

	// DropSelfLoops silently discards a→a entries instead of failing with ErrSelfLoop.
	DropSelfLoops bool
}

// Option mutates Options before import.
type Option func(*Options)

// WithSymmetrize enables repair of one-directional adjacency.
func WithSymmetrize() Option {
	return func(o *Options) { o.Symmetrize = true }
}

// WithDropSelfLoops discards self-loops found in the input.
func WithDropSelfLoops() Option {
	return func(o *Options) { o.DropSelfLoops = true }
}
