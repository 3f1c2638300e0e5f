// SPDX-License-Identifier: MIT
// Package: redistrict/precinct
//
// graph.go - Builder and read-only accessors of Graph.
//
// Builder collects units and edges, then Build freezes them into a dense
// Graph. Adding an edge twice is idempotent; edges to undeclared units are
// rejected immediately so no partial graph is ever produced.

package precinct

import (
	"fmt"
	"sort"
)

// Builder accumulates units and undirected edges for a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	units []Unit
	index map[string]int
	adj   []map[int]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddUnit declares a unit. Returns ErrEmptyUnitID, ErrNegativeCount or
// ErrDuplicateUnit for malformed input.
// Complexity: O(1) amortized.
func (b *Builder) AddUnit(u Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if _, exists := b.index[u.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, u.ID)
	}
	b.index[u.ID] = len(b.units)
	b.units = append(b.units, u)
	b.adj = append(b.adj, make(map[int]struct{}))

	return nil
}

// AddEdge connects two declared units. Returns ErrUnknownUnit when either
// endpoint is missing and ErrSelfLoop when from == to.
// Complexity: O(1).
func (b *Builder) AddEdge(from, to string) error {
	i, ok := b.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	j, ok := b.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if i == j {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	b.adj[i][j] = struct{}{}
	b.adj[j][i] = struct{}{}

	return nil
}

// HasUnit reports whether id has been declared.
func (b *Builder) HasUnit(id string) bool {
	_, ok := b.index[id]
	return ok
}

// Len returns the number of declared units.
func (b *Builder) Len() int { return len(b.units) }

// Build freezes the builder into a Graph. Returns ErrEmptyGraph when no unit
// was declared. The builder may keep being used; later mutations do not
// affect the returned Graph.
// Complexity: O(V + E log E).
func (b *Builder) Build() (*Graph, error) {
	if len(b.units) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		units: make([]Unit, len(b.units)),
		index: make(map[string]int, len(b.units)),
		adj:   make([][]int, len(b.units)),
	}
	copy(g.units, b.units)

	var (
		i, j int
		half int
	)
	for i = range b.units {
		g.index[b.units[i].ID] = i
		g.totalPop += b.units[i].Population

		nbrs := make([]int, 0, len(b.adj[i]))
		for j = range b.adj[i] {
			nbrs = append(nbrs, j)
		}
		sort.Ints(nbrs)
		g.adj[i] = nbrs
		half += len(nbrs)
	}
	g.edges = half / 2

	return g, nil
}

// Len returns the number of units.
func (g *Graph) Len() int { return len(g.units) }

// Unit returns the unit at dense index i.
func (g *Graph) Unit(i int) Unit { return g.units[i] }

// ID returns the identifier of the unit at dense index i.
func (g *Graph) ID(i int) string { return g.units[i].ID }

// Index resolves a unit ID to its dense index.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Neighbors returns the sorted neighbor indices of unit i.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Degree returns the number of neighbors of unit i.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// TotalPopulation returns the population summed over all units.
func (g *Graph) TotalPopulation() int64 { return g.totalPop }

// Units returns a copy of all units in input order.
// Complexity: O(V).
func (g *Graph) Units() []Unit {
	out := make([]Unit, len(g.units))
	copy(out, g.units)
	return out
}

// Edges returns every undirected edge once as (lower, higher) ID pairs,
// ordered by the lower endpoint's input order.
// Complexity: O(V + E).
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, 0, g.edges)
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j > i {
				out = append(out, [2]string{g.units[i].ID, g.units[j].ID})
			}
		}
	}
	return out
}

// HasEdge reports whether units i and j are adjacent.
// Complexity: O(log deg(i)).
func (g *Graph) HasEdge(i, j int) bool {
	nbrs := g.adj[i]
	k := sort.SearchInts(nbrs, j)
	return k < len(nbrs) && nbrs[k] == j
}
