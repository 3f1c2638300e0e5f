// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w.
//   • Constructors never panic; validation panics are confined to the
//     WithX option constructors (programmer errors).

package builder

import "errors"

// ErrTooFewUnits indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewUnits = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not add a unit or an
// edge to the precinct builder (e.g. an ID collision between composed
// constructors, or a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidRange indicates a generator range with lo > hi or negative bounds.
var ErrInvalidRange = errors.New("builder: invalid range")
