// Package anneal refines a complete districting plan by simulated
// annealing over single-unit border moves.
//
// Every candidate move is checked against the population band and against
// contiguity before it is applied: the source without the unit and the
// target with it must each be one connected piece. Legal moves that improve the best seat
// count are always kept; others survive with probability exp(Δ/T) under a
// geometric cooling schedule.
//
// The run is reproducible: all randomness comes from a seeded *rand.Rand
// (WithSeed, WithRand). Callers can bound the run by iterations, wall-clock
// time (WithTimeLimit) or context, and always receive the best plan seen.
package anneal
