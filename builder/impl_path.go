// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// impl_path.go - Path(n): units 0–1–…–(n-1).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewUnits); a single unit has no edges.
//   • Edges are emitted in ascending order i → i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/redistrict/precinct"
)

const (
	methodPath   = "Path"
	minPathUnits = 1
)

// Path returns a Constructor that builds an n-unit path.
func Path(n int) Constructor {
	return func(b *precinct.Builder, cfg builderConfig) error {
		if n < minPathUnits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathUnits, ErrTooFewUnits)
		}
		ids, err := addUnits(methodPath, b, cfg, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(methodPath, b, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}
