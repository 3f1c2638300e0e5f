// SPDX-License-Identifier: MIT
// Package: redistrict/precinct
//
// adjacency.go - import of an adjacency mapping (unit ID → neighbor IDs).
//
// Contract:
//   - Every key and every listed neighbor must be a declared unit.
//   - a→b must be matched by b→a unless WithSymmetrize is given.
//   - a→a is rejected unless WithDropSelfLoops is given.
//   - Units absent from the mapping are isolated (zero neighbors).
//   - Keys and arcs are checked in sorted order, so the first reported
//     problem does not depend on map iteration.

package precinct

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a Graph from units and a directed adjacency mapping
// that is expected to be symmetric.
//
// Errors: any Unit.Validate failure, ErrDuplicateUnit, ErrUnknownUnit,
// ErrSelfLoop, ErrAsymmetricEdge (all wrap ErrGraphIntegrity).
//
// Complexity: O(V + E log E).
func FromAdjacency(units []Unit, adjacency map[string][]string, opts ...Option) (*Graph, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	b := NewBuilder()
	for _, u := range units {
		if err := b.AddUnit(u); err != nil {
			return nil, err
		}
	}

	// directed holds every declared arc; used for the symmetry check below.
	directed := make(map[[2]int]struct{})
	keys := make([]string, 0, len(adjacency))
	for from := range adjacency {
		keys = append(keys, from)
	}
	sort.Strings(keys)
	for _, from := range keys {
		nbrs := adjacency[from]
		i, ok := b.index[from]
		if !ok {
			return nil, fmt.Errorf("%w: adjacency key %q", ErrUnknownUnit, from)
		}
		for _, to := range nbrs {
			j, ok := b.index[to]
			if !ok {
				return nil, fmt.Errorf("%w: neighbor %q of %q", ErrUnknownUnit, to, from)
			}
			if i == j {
				if o.DropSelfLoops {
					continue
				}
				return nil, fmt.Errorf("%w: %q", ErrSelfLoop, from)
			}
			directed[[2]int{i, j}] = struct{}{}
		}
	}

	// arcs are checked in index order so the reported edge is reproducible
	arcs := make([][2]int, 0, len(directed))
	for arc := range directed {
		arcs = append(arcs, arc)
	}
	sort.Slice(arcs, func(x, y int) bool {
		if arcs[x][0] != arcs[y][0] {
			return arcs[x][0] < arcs[y][0]
		}
		return arcs[x][1] < arcs[y][1]
	})
	for _, arc := range arcs {
		if _, ok := directed[[2]int{arc[1], arc[0]}]; !ok && !o.Symmetrize {
			return nil, fmt.Errorf("%w: %q→%q has no reverse entry",
				ErrAsymmetricEdge, b.units[arc[0]].ID, b.units[arc[1]].ID)
		}
		// AddEdge mirrors the arc, which is exactly the repair.
		b.adj[arc[0]][arc[1]] = struct{}{}
		b.adj[arc[1]][arc[0]] = struct{}{}
	}

	return b.Build()
}

// Adjacency exports the graph as a symmetric unit ID → neighbor IDs mapping.
// Isolated units map to an empty slice.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.units))
	for i, nbrs := range g.adj {
		ids := make([]string, len(nbrs))
		for k, j := range nbrs {
			ids[k] = g.units[j].ID
		}
		out[g.units[i].ID] = ids
	}
	return out
}
