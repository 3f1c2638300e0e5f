// SPDX-License-Identifier: MIT
// Package: redistrict/precinct
//
// components.go - connected components, induced subgraphs and the
// largest-component repair used when full connectivity is required.
//
// Components are computed with gonum's topo package over a simple undirected
// mirror of the graph. Output is made deterministic here: members ascend by
// input order, components are ordered by their first member.

package precinct

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the connected components as slices of dense indices.
// Isolated units form singleton components.
// Complexity: O(V + E) plus O(V log V) for the deterministic ordering.
func (g *Graph) Components() [][]int {
	ug := simple.NewUndirectedGraph()
	for i := range g.units {
		ug.AddNode(simple.Node(i))
	}
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j > i {
				ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	raw := topo.ConnectedComponents(ug)
	out := make([][]int, 0, len(raw))
	for _, cc := range raw {
		comp := make([]int, len(cc))
		for k, n := range cc {
			comp[k] = int(n.ID())
		}
		sort.Ints(comp)
		out = append(out, comp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// IsConnected reports whether the graph has exactly one component.
func (g *Graph) IsConnected() bool {
	return len(g.Components()) == 1
}

// Subgraph returns the graph induced by keep (dense indices of g). Units keep
// their relative input order; duplicate or out-of-range indices are ignored.
// Returns ErrEmptyGraph when nothing is kept.
// Complexity: O(V + E).
func (g *Graph) Subgraph(keep []int) (*Graph, error) {
	sel := make([]bool, len(g.units))
	for _, i := range keep {
		if i >= 0 && i < len(g.units) {
			sel[i] = true
		}
	}

	b := NewBuilder()
	for i, ok := range sel {
		if ok {
			if err := b.AddUnit(g.units[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, ok := range sel {
		if !ok {
			continue
		}
		for _, j := range g.adj[i] {
			if j > i && sel[j] {
				if err := b.AddEdge(g.units[i].ID, g.units[j].ID); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}

// LargestComponent returns the subgraph induced by the component with the
// most units (ties: the component whose first member comes first) together
// with the IDs of every dropped unit in input order. A connected graph is
// returned as-is with no dropped IDs.
func (g *Graph) LargestComponent() (*Graph, []string, error) {
	comps := g.Components()
	if len(comps) <= 1 {
		return g, nil, nil
	}

	best := 0
	for k := 1; k < len(comps); k++ {
		if len(comps[k]) > len(comps[best]) {
			best = k
		}
	}

	sub, err := g.Subgraph(comps[best])
	if err != nil {
		return nil, nil, err
	}

	kept := make([]bool, len(g.units))
	for _, i := range comps[best] {
		kept[i] = true
	}
	dropped := make([]string, 0, len(g.units)-len(comps[best]))
	for i, ok := range kept {
		if !ok {
			dropped = append(dropped, g.units[i].ID)
		}
	}

	return sub, dropped, nil
}
