// Package precinct defines the read-only adjacency graph that every
// districting algorithm in this module runs on.
//
// A Graph holds Units (precincts, VTDs or blocks) with a population and two
// competing tallies, plus undirected geographic adjacency. Graphs are built
// once through a Builder, FromAdjacency or ReadJSON, validated on the way in
// (no self-loops, symmetric adjacency, non-negative counts), and never
// mutated afterwards, so they can be shared freely between goroutines.
//
// Units are addressed by a dense index in input order. Algorithms work on
// indices; IDs are only resolved at the edges of the system.
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// is a four-unit ring; Components returns [[0 1 2 3]].
package precinct
