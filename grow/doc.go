// Package grow builds an initial total assignment by growing one region per
// district outward from its seed.
//
// Growth is greedy and contiguous: a district only absorbs units on its
// frontier, choosing the best-scoring one that keeps it at or under the
// population ceiling. When a district's frontier runs dry it restarts from
// the best unassigned unit anywhere, which can leave the district in several
// pieces; the optimizer never increases the number of pieces afterwards.
// Units no frontier reaches are placed at the end and reported.
//
// The unassigned pool is indexed by score in ordered sets
// (github.com/tidwall/btree), so reseeding costs O(log V) per update
// instead of a graph-wide scan.
package grow
