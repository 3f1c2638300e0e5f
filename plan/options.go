// SPDX-License-Identifier: MIT
// Package: redistrict/plan
//
// options.go - Run options and the lazily created tracer.

package plan

import (
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/redistrict/anneal"
	"github.com/katalvlaran/redistrict/grow"
)

const tracerName = "github.com/katalvlaran/redistrict/plan"

var (
	tracerOnce sync.Once
	planTracer trace.Tracer
)

// defaultTracer returns the global-provider tracer, created on first use so
// hosts can install a provider before the first run.
func defaultTracer() trace.Tracer {
	tracerOnce.Do(func() {
		planTracer = otel.Tracer(tracerName)
	})
	return planTracer
}

type runOptions struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	runID       string
	onAssign    func(unit, district int, kind grow.Placement)
	onIteration func(anneal.Step)
}

// RunOption customizes Run.
type RunOption func(*runOptions)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(l *slog.Logger) RunOption {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer overrides the OpenTelemetry tracer.
func WithTracer(t trace.Tracer) RunOption {
	return func(o *runOptions) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithRunID fixes the run identifier instead of generating a UUID.
func WithRunID(id string) RunOption {
	return func(o *runOptions) { o.runID = id }
}

// WithPlacementHook observes every growth placement.
func WithPlacementHook(fn func(unit, district int, kind grow.Placement)) RunOption {
	return func(o *runOptions) { o.onAssign = fn }
}

// WithIterationHook observes every annealing iteration.
func WithIterationHook(fn func(anneal.Step)) RunOption {
	return func(o *runOptions) { o.onIteration = fn }
}
