// Package metrics exposes Prometheus collectors for growth placements,
// annealing progress, phase latency and run warnings.
package metrics
