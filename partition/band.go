// SPDX-License-Identifier: MIT
// Package: redistrict/partition
//
// band.go - the population band [Min, Max] around the ideal district size.

package partition

import (
	"errors"
	"fmt"
)

// ErrBand is returned for a band that cannot be derived.
var ErrBand = errors.New("partition: invalid population band")

// Band is the tolerated district population window:
// Ideal = total / k, Min = Ideal·(1−ε), Max = Ideal·(1+ε).
type Band struct {
	Ideal   float64
	Min     float64
	Max     float64
	Epsilon float64
}

// NewBand derives the band for k districts over total population with
// deviation fraction eps (0 < eps < 1).
func NewBand(total int64, k int, eps float64) (Band, error) {
	if k <= 0 {
		return Band{}, fmt.Errorf("%w: k=%d", ErrBand, k)
	}
	if total < 0 {
		return Band{}, fmt.Errorf("%w: total population %d", ErrBand, total)
	}
	if !(eps > 0 && eps < 1) {
		return Band{}, fmt.Errorf("%w: epsilon %v outside (0,1)", ErrBand, eps)
	}
	ideal := float64(total) / float64(k)
	return Band{
		Ideal:   ideal,
		Min:     ideal * (1 - eps),
		Max:     ideal * (1 + eps),
		Epsilon: eps,
	}, nil
}

// Contains reports whether pop lies within [Min, Max].
func (b Band) Contains(pop int64) bool {
	p := float64(pop)
	return p >= b.Min && p <= b.Max
}

// Fits reports whether adding add to a district at pop stays at or under Max.
func (b Band) Fits(pop, add int64) bool {
	return float64(pop+add) <= b.Max
}

// Deviation returns |pop − Ideal| / Ideal, or 0 when Ideal is 0.
func (b Band) Deviation(pop int64) float64 {
	if b.Ideal == 0 {
		return 0
	}
	d := float64(pop) - b.Ideal
	if d < 0 {
		d = -d
	}
	return d / b.Ideal
}
