// SPDX-License-Identifier: MIT
// Package: redistrict/grow
//
// types.go - options, placement kinds, Result and sentinel errors.

package grow

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the growth engine.
var (
	// ErrStateNil is returned when no partition state is supplied.
	ErrStateNil = errors.New("grow: state is nil")

	// ErrStateNotEmpty is returned when the state already has assigned units.
	ErrStateNotEmpty = errors.New("grow: state must start empty")

	// ErrSeeds is returned when the seeds do not name one distinct unit per district.
	ErrSeeds = errors.New("grow: invalid seeds")

	// ErrScores is returned when the score slice does not cover every unit.
	ErrScores = errors.New("grow: score count does not match unit count")

	// ErrCapacityExhausted is returned when a unit cannot be placed in any
	// district without exceeding the ceiling and overflow is not allowed.
	ErrCapacityExhausted = errors.New("grow: no district can absorb unit under the population ceiling")

	// ErrOptionViolation is returned for malformed options.
	ErrOptionViolation = errors.New("grow: invalid option")
)

// Placement tells how a unit entered its district.
type Placement int

const (
	// PlaceSeed is the initial seed of a district.
	PlaceSeed Placement = iota
	// PlaceFrontier is ordinary contiguous growth from the frontier.
	PlaceFrontier
	// PlaceReseed starts a new blob after the frontier ran dry.
	PlaceReseed
	// PlaceForced is a leftover unit placed after growth stalled.
	PlaceForced
	// PlaceOverflow is a leftover placed above the ceiling (WithOverflow only).
	PlaceOverflow
)

// String implements fmt.Stringer.
func (p Placement) String() string {
	switch p {
	case PlaceSeed:
		return "seed"
	case PlaceFrontier:
		return "frontier"
	case PlaceReseed:
		return "reseed"
	case PlaceForced:
		return "forced"
	case PlaceOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// Options configure Grow.
type Options struct {
	// Ctx is checked once per growth round. Default: context.Background().
	Ctx context.Context

	// Inverted lists districts that prefer the lowest score instead of the
	// highest (packing growth).
	Inverted map[int]bool

	// Overflow lets leftovers exceed the ceiling instead of failing.
	Overflow bool

	// OnAssign is called after every placement.
	OnAssign func(unit, district int, kind Placement)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration growth options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Inverted: map[int]bool{}}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInverted marks districts that grow toward the lowest score.
func WithInverted(districts ...int) Option {
	return func(o *Options) {
		for _, d := range districts {
			if d < 0 {
				o.err = fmt.Errorf("%w: inverted district %d", ErrOptionViolation, d)
				return
			}
			o.Inverted[d] = true
		}
	}
}

// WithOverflow allows leftovers to exceed the ceiling when no district has room.
func WithOverflow() Option {
	return func(o *Options) { o.Overflow = true }
}

// WithOnAssign installs a placement hook.
func WithOnAssign(fn func(unit, district int, kind Placement)) Option {
	return func(o *Options) { o.OnAssign = fn }
}

// Result reports how growth went. Unit lists are in placement order.
type Result struct {
	// Populations per district after growth.
	Populations []int64

	// Reseeded units started a new, possibly detached, blob.
	Reseeded []int

	// Forced units were never reached by any frontier.
	Forced []int

	// Overflowed units were placed above the ceiling.
	Overflowed []int

	// Closed districts ran out of reachable units that fit.
	Closed []int

	// Rounds is the number of growth rounds executed.
	Rounds int
}
