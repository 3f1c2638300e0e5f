// Package redistrict draws contiguous, population-balanced district plans
// from a precinct adjacency graph and steers them toward a partisan
// objective.
//
// The pipeline, leaves first:
//
//	precinct/  - immutable precinct graph: units, adjacency, components, JSON codec
//	bfs/       - subset-restricted breadth-first search for contiguity checks
//	partition/ - mutable plan state, population band, border moves, CSV codec
//	seed/      - one seed per district from the extremes of a lean score
//	grow/      - frontier growth under a population ceiling
//	objective/ - per-district tallies, tie rule, seats per side
//	anneal/    - simulated annealing over border moves
//	plan/      - configuration, orchestration, summary and warnings
//	metrics/   - Prometheus collectors
//	builder/   - synthetic Path, Ring and Grid graphs
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// With C and D voting for side A and one packed seed per side, growth
// pairs each voting unit with a silent one: {B,C} and {A,D}.
//
//	go install github.com/katalvlaran/redistrict/cmd/redistrict@latest
package redistrict
