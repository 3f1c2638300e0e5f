// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// impl_grid.go - Grid(rows, cols): a 4-neighborhood lattice of units.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewUnits).
//   • Units are added in row-major order with the fixed ID scheme "r,c";
//     cfg.idFn is intentionally ignored to keep coordinates explicit.
//   • For each (r,c) the Right then Bottom edge is emitted when present.
//
// Complexity: O(rows·cols) units and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/redistrict/precinct"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(b *precinct.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewUnits)
		}
		base := b.Len()
		cell := func(global int) string {
			k := global - base
			return fmt.Sprintf(gridIDFmt, k/cols, k%cols)
		}
		ids, err := addUnits(methodGrid, b, cfg, rows*cols, cell)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = link(methodGrid, b, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(methodGrid, b, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
