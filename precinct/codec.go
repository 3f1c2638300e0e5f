// SPDX-License-Identifier: MIT
// Package: redistrict/precinct
//
// codec.go - JSON document format for precinct graphs.
//
//	{
//	  "units": [{"id": "A", "population": 100, "tally_a": 10, "tally_b": 0}, ...],
//	  "edges": [["A", "B"], ...],               // undirected, optional
//	  "adjacency": {"A": ["B", ...], ...}       // directed, must be symmetric, optional
//	}
//
// Edges and adjacency may be combined; edges are mirrored before the
// adjacency symmetry check runs.

package precinct

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnitRecord is the wire form of a Unit.
type UnitRecord struct {
	ID         string `json:"id"`
	Population int64  `json:"population"`
	TallyA     int64  `json:"tally_a"`
	TallyB     int64  `json:"tally_b"`
}

// Document is the wire form of a Graph.
type Document struct {
	Units     []UnitRecord        `json:"units"`
	Edges     [][2]string         `json:"edges,omitempty"`
	Adjacency map[string][]string `json:"adjacency,omitempty"`
}

// Graph converts the document into a validated Graph.
func (d Document) Graph(opts ...Option) (*Graph, error) {
	units := make([]Unit, len(d.Units))
	for i, r := range d.Units {
		units[i] = Unit{ID: r.ID, Population: r.Population, TallyA: r.TallyA, TallyB: r.TallyB}
	}

	adjacency := make(map[string][]string, len(d.Adjacency)+len(d.Edges))
	for id, nbrs := range d.Adjacency {
		adjacency[id] = append(adjacency[id], nbrs...)
	}
	for _, e := range d.Edges {
		adjacency[e[0]] = append(adjacency[e[0]], e[1])
		adjacency[e[1]] = append(adjacency[e[1]], e[0])
	}

	return FromAdjacency(units, adjacency, opts...)
}

// Document converts the graph into its wire form using the edge list.
func (g *Graph) Document() Document {
	d := Document{
		Units: make([]UnitRecord, len(g.units)),
		Edges: g.Edges(),
	}
	for i, u := range g.units {
		d.Units[i] = UnitRecord{ID: u.ID, Population: u.Population, TallyA: u.TallyA, TallyB: u.TallyB}
	}
	return d
}

// ReadJSON decodes a Document from r and builds the Graph.
func ReadJSON(r io.Reader, opts ...Option) (*Graph, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("precinct: decode graph document: %w", err)
	}
	return d.Graph(opts...)
}

// WriteJSON encodes the graph as an indented Document.
func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Document()); err != nil {
		return fmt.Errorf("precinct: encode graph document: %w", err)
	}
	return nil
}
