// SPDX-License-Identifier: MIT
// Package: redistrict/plan
//
// hooks.go - progress logging and metrics wired into the algorithm hooks.
//
// The algorithm packages stay free of logging; everything observable about
// a run flows through grow.WithOnAssign and anneal.WithOnIteration here.

package plan

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/redistrict/anneal"
	"github.com/katalvlaran/redistrict/grow"
	"github.com/katalvlaran/redistrict/metrics"
)

func growOptions(ctx context.Context, cfg Config, o runOptions, log *slog.Logger, units int) []grow.Option {
	opts := []grow.Option{grow.WithContext(ctx)}
	if cfg.Overflow {
		opts = append(opts, grow.WithOverflow())
	}
	if cfg.PackGrowth && cfg.PackA > 0 {
		packed := make([]int, cfg.PackA)
		for d := range packed {
			packed[d] = d
		}
		opts = append(opts, grow.WithInverted(packed...))
	}

	placed := 0
	opts = append(opts, grow.WithOnAssign(func(unit, district int, kind grow.Placement) {
		placed++
		metrics.RecordPlacement(kind.String())
		if cfg.ProgressEvery > 0 && placed%cfg.ProgressEvery == 0 {
			log.Debug("plan: growth progress", "assigned", placed, "units", units)
		}
		if o.onAssign != nil {
			o.onAssign(unit, district, kind)
		}
	}))
	return opts
}

func annealOptions(cfg Config, o runOptions, log *slog.Logger) []anneal.Option {
	a := cfg.Anneal
	opts := []anneal.Option{
		anneal.WithSchedule(a.Schedule()),
		anneal.WithSeed(a.Seed),
		anneal.WithTimeLimit(a.TimeLimit),
		anneal.WithMaxContiguityVisits(a.MaxContiguityVisits),
	}
	opts = append(opts, anneal.WithOnIteration(func(st anneal.Step) {
		metrics.RecordIteration(st.Outcome.String(), st.Temperature, st.BestSeats)
		if cfg.ProgressEvery > 0 && st.Iteration%cfg.ProgressEvery == 0 {
			log.Debug("plan: local search progress",
				"iteration", st.Iteration, "best_seats", st.BestSeats, "temperature", st.Temperature)
		}
		if o.onIteration != nil {
			o.onIteration(st)
		}
	}))
	return opts
}
