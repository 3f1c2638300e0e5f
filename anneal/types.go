// SPDX-License-Identifier: MIT
// Package: redistrict/anneal
//
// types.go - schedule, options, per-iteration outcomes and the run Result.

package anneal

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/redistrict/partition"
)

// Sentinel errors.
var (
	ErrStateNil        = errors.New("anneal: state is nil")
	ErrEvaluatorNil    = errors.New("anneal: evaluator is nil")
	ErrIncomplete      = errors.New("anneal: state must assign every unit")
	ErrOptionViolation = errors.New("anneal: invalid option")
)

// minTemperature keeps exp(Δ/T) finite when T approaches zero.
const minTemperature = 1e-6

// Schedule is the geometric cooling plan T ← max(T·Alpha, TFinal).
type Schedule struct {
	TInit   float64
	TFinal  float64
	Alpha   float64
	MaxIter int
}

// DefaultSchedule returns T 1.0 → 0.001, α=0.995, 2000 iterations.
func DefaultSchedule() Schedule {
	return Schedule{TInit: 1.0, TFinal: 0.001, Alpha: 0.995, MaxIter: 2000}
}

// Validate enforces TInit > TFinal > 0, 0 < Alpha < 1 and MaxIter ≥ 0.
func (s Schedule) Validate() error {
	switch {
	case !(s.TFinal > 0):
		return fmt.Errorf("%w: t_final=%v must be > 0", ErrOptionViolation, s.TFinal)
	case !(s.TInit > s.TFinal):
		return fmt.Errorf("%w: t_init=%v must exceed t_final=%v", ErrOptionViolation, s.TInit, s.TFinal)
	case !(s.Alpha > 0 && s.Alpha < 1):
		return fmt.Errorf("%w: alpha=%v outside (0,1)", ErrOptionViolation, s.Alpha)
	case s.MaxIter < 0:
		return fmt.Errorf("%w: max_iter=%d", ErrOptionViolation, s.MaxIter)
	}
	return nil
}

// Outcome classifies one iteration.
type Outcome int

const (
	// Improved: accepted and raised the best objective.
	Improved Outcome = iota
	// Accepted: accepted without improving the best objective.
	Accepted
	// Reverted: legal move applied, then undone by the acceptance test.
	Reverted
	// RejectedPopulation: the move would leave the population band.
	RejectedPopulation
	// RejectedEmpty: the move would empty its source district.
	RejectedEmpty
	// RejectedContiguity: the move would split the source or target district.
	RejectedContiguity
	// RejectedUnverified: the contiguity check exceeded its visit budget.
	RejectedUnverified
)

var outcomeNames = [...]string{
	"improved", "accepted", "reverted",
	"rejected_population", "rejected_empty", "rejected_contiguity", "rejected_unverified",
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// StopReason tells why the search ended.
type StopReason int

const (
	StopMaxIter StopReason = iota
	StopNoBorder
	StopDeadline
	StopCancelled
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopMaxIter:
		return "max_iter"
	case StopNoBorder:
		return "no_border"
	case StopDeadline:
		return "deadline"
	case StopCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Step is passed to the OnIteration hook after the iteration is decided.
type Step struct {
	Iteration   int
	Temperature float64
	Move        partition.Move
	Seats       int
	BestSeats   int
	Outcome     Outcome
}

// Options configure Optimize.
type Options struct {
	Schedule  Schedule
	Seed      int64
	Rand      *rand.Rand
	TimeLimit time.Duration

	// MaxContiguityVisits caps one contiguity traversal (0 = unbounded).
	MaxContiguityVisits int

	OnIteration func(Step)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultSchedule with seed 0 and no limits.
func DefaultOptions() Options {
	return Options{Schedule: DefaultSchedule()}
}

// WithSchedule replaces the cooling schedule; it is validated by Optimize.
func WithSchedule(s Schedule) Option {
	return func(o *Options) { o.Schedule = s }
}

// WithSeed seeds the internal RNG (0 selects the fixed default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an RNG; it takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithTimeLimit bounds wall-clock time (0 = none).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: time limit %v", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxContiguityVisits bounds every contiguity traversal.
func WithMaxContiguityVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: contiguity visits %d", ErrOptionViolation, n)
			return
		}
		o.MaxContiguityVisits = n
	}
}

// WithOnIteration installs a per-iteration hook.
func WithOnIteration(fn func(Step)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// Result is the outcome of one optimization run.
type Result struct {
	// Best is the best assignment seen; the state is left equal to it.
	Best partition.Assignment

	InitialSeats int
	BestSeats    int

	// Iterations counts iterations that drew a candidate move.
	Iterations int
	Counts     map[Outcome]int

	Stop             StopReason
	FinalTemperature float64

	// NoOp is set when no move ever improved on the initial objective.
	NoOp bool
}
