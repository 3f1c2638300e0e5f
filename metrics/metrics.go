// SPDX-License-Identifier: MIT
// Package: redistrict/metrics
//
// metrics.go - Prometheus collectors for districting runs.
//
// Collectors register on the default registry at init (promauto) and are
// served by promhttp from `redistrict run --metrics-addr`. Algorithm packages
// never import this package; plan feeds it through their hooks.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "redistrict"
)

var (
	// runsTotal counts pipeline runs.
	// Labels: status (ok, error)
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "plan",
		Name:      "runs_total",
		Help:      "Districting runs by final status",
	}, []string{"status"})

	// phaseDuration measures each pipeline phase.
	// Labels: phase (seed, grow, anneal, summarize)
	phaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "plan",
		Name:      "phase_duration_seconds",
		Help:      "Duration of pipeline phases in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
	}, []string{"phase"})

	// placements counts growth placements.
	// Labels: kind (seed, frontier, reseed, forced, overflow)
	placements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "grow",
		Name:      "placements_total",
		Help:      "Units placed by the growth engine, by placement kind",
	}, []string{"kind"})

	// iterations counts annealing iterations by outcome.
	// Labels: outcome (improved, accepted, reverted, rejected_*)
	iterations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "anneal",
		Name:      "iterations_total",
		Help:      "Annealing iterations by outcome",
	}, []string{"outcome"})

	// temperature is the current annealing temperature.
	temperature = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "anneal",
		Name:      "temperature",
		Help:      "Current annealing temperature",
	})

	// bestSeats is the best target-side seat count of the current run.
	bestSeats = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "anneal",
		Name:      "best_seats",
		Help:      "Best target-side seat count observed in the current run",
	})

	// warnings counts non-fatal conditions reported in run summaries.
	// Labels: kind
	warnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "plan",
		Name:      "warnings_total",
		Help:      "Non-fatal warnings reported by runs",
	}, []string{"kind"})
)

// RecordRun records the final status of one run.
func RecordRun(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	runsTotal.WithLabelValues(status).Inc()
}

// ObservePhase records how long a pipeline phase took.
func ObservePhase(phase string, seconds float64) {
	phaseDuration.WithLabelValues(phase).Observe(seconds)
}

// RecordPlacement counts one growth placement.
func RecordPlacement(kind string) {
	placements.WithLabelValues(kind).Inc()
}

// RecordIteration counts one annealing iteration and updates the gauges.
func RecordIteration(outcome string, temp float64, best int) {
	iterations.WithLabelValues(outcome).Inc()
	temperature.Set(temp)
	bestSeats.Set(float64(best))
}

// RecordWarning counts one summary warning.
func RecordWarning(kind string) {
	warnings.WithLabelValues(kind).Inc()
}
