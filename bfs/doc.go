// Package bfs provides breadth-first search over dense-indexed graphs and
// the subset reachability checks built on it.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - WithFilterNeighbor restricts the walk to a vertex subset; this is how
//     district contiguity is checked without materializing subgraphs.
//   - WithMaxVisits bounds the work of a single call.
//   - Connected answers "is this subset one piece?", CountComponents
//     answers "how many pieces?".
//
// Determinism
//
//	Neighbors are expanded in the order the Graph returns them
//	(ascending for precinct.Graph), so visit order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for an unrestricted walk, O(|subset| + incident edges) when filtered.
//   - Memory: O(reached) for the visited set.
package bfs
