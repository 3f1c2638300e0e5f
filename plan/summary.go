// SPDX-License-Identifier: MIT
// Package: redistrict/plan
//
// summary.go - per-district report, seat counts and warnings of a plan.

package plan

import (
	"fmt"

	"github.com/katalvlaran/redistrict/objective"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
)

// WarningKind classifies a non-fatal condition.
type WarningKind string

const (
	WarnDroppedComponents WarningKind = "dropped_components"
	WarnUnreachableUnits  WarningKind = "unreachable_units"
	WarnCapacityOverflow  WarningKind = "capacity_overflow"
	WarnNonContiguous     WarningKind = "non_contiguous"
	WarnOptimizerNoOp     WarningKind = "optimizer_noop"
)

// Warning is a recovered problem reported alongside a valid plan.
type Warning struct {
	Kind      WarningKind `json:"kind"`
	Message   string      `json:"message"`
	Units     []string    `json:"units,omitempty"`
	Districts []int       `json:"districts,omitempty"`
}

// DistrictSummary describes one district of a plan.
type DistrictSummary struct {
	District   int     `json:"district"`
	Units      int     `json:"units"`
	Population int64   `json:"population"`
	TallyA     int64   `json:"tally_a"`
	TallyB     int64   `json:"tally_b"`
	Winner     string  `json:"winner"`
	Deviation  float64 `json:"deviation"`
	WithinBand bool    `json:"within_band"`
	Components int     `json:"components"`
}

// Summary reports a plan and how it was produced.
type Summary struct {
	RunID string `json:"run_id,omitempty"`

	IdealPopulation float64 `json:"ideal_population"`
	MinPopulation   float64 `json:"min_population"`
	MaxPopulation   float64 `json:"max_population"`

	Districts     []DistrictSummary `json:"districts"`
	MaxDeviation  float64           `json:"max_deviation"`
	MeanDeviation float64           `json:"mean_deviation"`

	Target             string `json:"target"`
	SeatsA             int    `json:"seats_a"`
	SeatsB             int    `json:"seats_b"`
	Ties               int    `json:"ties"`
	InitialTargetSeats int    `json:"initial_target_seats"`
	FinalTargetSeats   int    `json:"final_target_seats"`

	Iterations int    `json:"iterations"`
	StopReason string `json:"stop_reason,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// HasWarning reports whether a warning of kind k was raised.
func (s *Summary) HasWarning(k WarningKind) bool {
	for _, w := range s.Warnings {
		if w.Kind == k {
			return true
		}
	}
	return false
}

// Summarize recomputes the report for an existing plan of g. Every unit of
// g must be assigned; IDs unknown to g are rejected.
func Summarize(g *precinct.Graph, assignment map[string]int, cfg Config) (*Summary, error) {
	if g == nil {
		return nil, partition.ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Districts > g.Len() {
		return nil, &ConfigError{Field: "districts", Reason: fmt.Sprintf("%d exceeds unit count %d", cfg.Districts, g.Len())}
	}
	r, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	a := make(partition.Assignment, g.Len())
	for i := range a {
		a[i] = partition.Unassigned
	}
	for id, d := range assignment {
		u, ok := g.Index(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", precinct.ErrUnknownUnit, id)
		}
		a[u] = d
	}

	band, err := partition.NewBand(g.TotalPopulation(), cfg.Districts, cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	ev, err := objective.New(g, cfg.Districts, r.target, r.tie)
	if err != nil {
		return nil, err
	}
	s, err := partition.FromAssignment(g, cfg.Districts, a)
	if err != nil {
		return nil, err
	}
	return summarize(s, band, ev)
}

// summarize builds the district table, seat counts and contiguity warning.
func summarize(s *partition.State, band partition.Band, ev *objective.Evaluator) (*Summary, error) {
	res, err := ev.Evaluate(s.View())
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		IdealPopulation:    band.Ideal,
		MinPopulation:      band.Min,
		MaxPopulation:      band.Max,
		Districts:          make([]DistrictSummary, len(res.Districts)),
		Target:             ev.Target().String(),
		SeatsA:             res.SeatsA,
		SeatsB:             res.SeatsB,
		Ties:               res.Ties,
		InitialTargetSeats: res.Target,
		FinalTargetSeats:   res.Target,
	}

	var split []int
	for d, t := range res.Districts {
		pieces, err := s.Components(d)
		if err != nil {
			return nil, err
		}
		dev := band.Deviation(t.Population)
		sum.Districts[d] = DistrictSummary{
			District:   d,
			Units:      t.Units,
			Population: t.Population,
			TallyA:     t.TallyA,
			TallyB:     t.TallyB,
			Winner:     t.Winner.String(),
			Deviation:  dev,
			WithinBand: band.Contains(t.Population),
			Components: pieces,
		}
		sum.MeanDeviation += dev
		if dev > sum.MaxDeviation {
			sum.MaxDeviation = dev
		}
		if pieces > 1 {
			split = append(split, d)
		}
	}
	if n := len(res.Districts); n > 0 {
		sum.MeanDeviation /= float64(n)
	}
	if len(split) > 0 {
		sum.Warnings = append(sum.Warnings, Warning{
			Kind:      WarnNonContiguous,
			Message:   fmt.Sprintf("%d district(s) consist of more than one piece", len(split)),
			Districts: split,
		})
	}
	return sum, nil
}
