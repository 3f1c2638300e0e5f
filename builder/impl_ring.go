// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// impl_ring.go - Ring(n): the cycle 0–1–…–(n-1)–0.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewUnits).
//   • Edges are emitted in ascending order i → (i+1) mod n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/redistrict/precinct"
)

const (
	methodRing   = "Ring"
	minRingUnits = 3
)

// Ring returns a Constructor that builds an n-unit cycle.
func Ring(n int) Constructor {
	return func(b *precinct.Builder, cfg builderConfig) error {
		if n < minRingUnits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingUnits, ErrTooFewUnits)
		}
		ids, err := addUnits(methodRing, b, cfg, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(methodRing, b, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}
