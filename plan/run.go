// SPDX-License-Identifier: MIT
// Package: redistrict/plan
//
// run.go - the districting pipeline:
//
//	validate → component policy → seeds → grow → anneal → summary
//
// Configuration and graph-integrity problems abort before any assignment
// exists. Everything else is recovered and reported as a Warning; a returned
// Result always assigns every unit of Result.Graph.

package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/redistrict/anneal"
	"github.com/katalvlaran/redistrict/grow"
	"github.com/katalvlaran/redistrict/metrics"
	"github.com/katalvlaran/redistrict/objective"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
	"github.com/katalvlaran/redistrict/seed"
)

// maxListedUnits caps unit IDs embedded in a warning message.
const maxListedUnits = 10

// Result is a finished plan.
type Result struct {
	// Graph is the graph actually districted (the largest component under
	// the "largest" policy).
	Graph *precinct.Graph

	// Plan is the dense assignment over Graph.
	Plan partition.Assignment

	// Assignment maps unit ID → district.
	Assignment map[string]int

	Summary *Summary
}

// Run draws a plan for g under cfg.
func Run(ctx context.Context, g *precinct.Graph, cfg Config, opts ...RunOption) (res *Result, err error) {
	o := runOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = defaultTracer()
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := o.logger.With("run_id", o.runID)

	ctx, span := o.tracer.Start(ctx, "plan.Run", trace.WithAttributes(
		attribute.String("run_id", o.runID),
		attribute.Int("districts", cfg.Districts),
		attribute.Float64("epsilon", cfg.Epsilon),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "run failed")
			log.Error("plan: run failed", "error", err)
		}
		metrics.RecordRun(err)
		span.End()
	}()

	if g == nil {
		return nil, partition.ErrGraphNil
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	r, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	g, warnings, err = applyComponentPolicy(g, cfg.Components, log)
	if err != nil {
		return nil, err
	}
	if cfg.Districts > g.Len() {
		return nil, &ConfigError{Field: "districts", Reason: fmt.Sprintf("%d exceeds unit count %d", cfg.Districts, g.Len())}
	}
	span.SetAttributes(attribute.Int("units", g.Len()), attribute.Int("edges", g.EdgeCount()))
	log.Info("plan: starting",
		"units", g.Len(), "edges", g.EdgeCount(), "population", g.TotalPopulation(),
		"districts", cfg.Districts, "epsilon", cfg.Epsilon, "target", cfg.Target)

	band, err := partition.NewBand(g.TotalPopulation(), cfg.Districts, cfg.Epsilon)
	if err != nil {
		return nil, &ConfigError{Field: "epsilon", Reason: err.Error()}
	}

	// seeds
	var seeds []int
	scores := seed.Scores(g, r.lean)
	err = phase(ctx, o.tracer, "seed", func(context.Context, trace.Span) error {
		var perr error
		seeds, perr = seed.Select(g, r.lean, cfg.PackA, cfg.PackB)
		return perr
	})
	if err != nil {
		return nil, err
	}

	// growth
	state, err := partition.New(g, cfg.Districts)
	if err != nil {
		return nil, err
	}
	var gres grow.Result
	err = phase(ctx, o.tracer, "grow", func(pctx context.Context, sp trace.Span) error {
		var perr error
		gres, perr = grow.Grow(state, seeds, band, scores, growOptions(pctx, cfg, o, log, g.Len())...)
		if errors.Is(perr, grow.ErrCapacityExhausted) {
			perr = &ConfigError{
				Field:  "epsilon",
				Reason: fmt.Sprintf("band [%.0f, %.0f] too tight for unit granularity (or set overflow: true)", band.Min, band.Max),
				Err:    perr,
			}
		}
		sp.SetAttributes(
			attribute.Int("rounds", gres.Rounds),
			attribute.Int("reseeded", len(gres.Reseeded)),
			attribute.Int("forced", len(gres.Forced)),
		)
		return perr
	})
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, growthWarnings(g, gres)...)
	log.Info("plan: growth finished",
		"rounds", gres.Rounds, "reseeded", len(gres.Reseeded),
		"forced", len(gres.Forced), "overflowed", len(gres.Overflowed))

	// local search
	ev, err := objective.New(g, cfg.Districts, r.target, r.tie)
	if err != nil {
		return nil, err
	}
	var ares anneal.Result
	err = phase(ctx, o.tracer, "anneal", func(pctx context.Context, sp trace.Span) error {
		var perr error
		ares, perr = anneal.Optimize(pctx, state, band, ev, annealOptions(cfg, o, log)...)
		sp.SetAttributes(
			attribute.Int("iterations", ares.Iterations),
			attribute.Int("initial_seats", ares.InitialSeats),
			attribute.Int("best_seats", ares.BestSeats),
			attribute.String("stop", ares.Stop.String()),
		)
		return perr
	})
	if err != nil {
		return nil, err
	}
	if ares.NoOp {
		warnings = append(warnings, Warning{
			Kind: WarnOptimizerNoOp,
			Message: fmt.Sprintf("no improving move in %d iterations (stop: %s); growth plan kept at %d target seats",
				ares.Iterations, ares.Stop, ares.BestSeats),
		})
	}
	log.Info("plan: local search finished",
		"iterations", ares.Iterations, "initial_seats", ares.InitialSeats,
		"best_seats", ares.BestSeats, "stop", ares.Stop.String())

	// summary
	var sum *Summary
	err = phase(ctx, o.tracer, "summarize", func(context.Context, trace.Span) error {
		var perr error
		sum, perr = summarize(state, band, ev)
		return perr
	})
	if err != nil {
		return nil, err
	}
	sum.RunID = o.runID
	sum.InitialTargetSeats = ares.InitialSeats
	sum.Iterations = ares.Iterations
	sum.StopReason = ares.Stop.String()
	sum.Warnings = append(warnings, sum.Warnings...)

	for _, w := range sum.Warnings {
		metrics.RecordWarning(string(w.Kind))
		log.Warn("plan: "+w.Message, "kind", w.Kind)
	}
	log.Info("plan: done",
		"seats_a", sum.SeatsA, "seats_b", sum.SeatsB, "ties", sum.Ties,
		"max_deviation", sum.MaxDeviation, "warnings", len(sum.Warnings))

	plan := state.Assignment()
	return &Result{
		Graph:      g,
		Plan:       plan,
		Assignment: plan.Map(g),
		Summary:    sum,
	}, nil
}

// phase runs fn inside a child span and records its duration.
func phase(ctx context.Context, tr trace.Tracer, name string, fn func(context.Context, trace.Span) error) error {
	ctx, span := tr.Start(ctx, "plan."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx, span)
	metrics.ObservePhase(name, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name+" failed")
		return fmt.Errorf("plan: %s: %w", name, err)
	}
	return nil
}

// applyComponentPolicy enforces the configured handling of disconnected graphs.
func applyComponentPolicy(g *precinct.Graph, policy string, log *slog.Logger) (*precinct.Graph, []Warning, error) {
	comps := g.Components()
	if len(comps) <= 1 {
		return g, nil, nil
	}
	switch policy {
	case ComponentsLargest:
		kept, dropped, err := g.LargestComponent()
		if err != nil {
			return nil, nil, err
		}
		log.Warn("plan: keeping largest component", "components", len(comps), "dropped_units", len(dropped))
		return kept, []Warning{{
			Kind: WarnDroppedComponents,
			Message: fmt.Sprintf("dropped %d unit(s) outside the largest of %d components: %s",
				len(dropped), len(comps), listIDs(dropped)),
			Units: dropped,
		}}, nil
	case ComponentsAllow:
		log.Warn("plan: graph is disconnected; districts may span components", "components", len(comps))
		return g, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d components", precinct.ErrDisconnected, len(comps))
	}
}

func growthWarnings(g *precinct.Graph, res grow.Result) []Warning {
	var out []Warning
	if len(res.Forced) > 0 {
		ids := idsOf(g, res.Forced)
		out = append(out, Warning{
			Kind:    WarnUnreachableUnits,
			Message: fmt.Sprintf("%d unit(s) were not reached by any frontier and were placed individually: %s", len(ids), listIDs(ids)),
			Units:   ids,
		})
	}
	if len(res.Overflowed) > 0 {
		ids := idsOf(g, res.Overflowed)
		out = append(out, Warning{
			Kind:    WarnCapacityOverflow,
			Message: fmt.Sprintf("%d unit(s) placed above the population ceiling: %s", len(ids), listIDs(ids)),
			Units:   ids,
		})
	}
	return out
}

func idsOf(g *precinct.Graph, units []int) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = g.ID(u)
	}
	return out
}

func listIDs(ids []string) string {
	if len(ids) <= maxListedUnits {
		return strings.Join(ids, ", ")
	}
	return strings.Join(ids[:maxListedUnits], ", ") + fmt.Sprintf(" (+%d more)", len(ids)-maxListedUnits)
}
