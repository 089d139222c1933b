// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Ids are allocated row-major; cell (r,c) is ids[r*cols+c].
//   - 4-neighborhood: right neighbor then down neighbor, per cell, row-major.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d, min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := f.alloc(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := ids[r*cols+c]
				if c+1 < cols {
					f.link(cur, ids[r*cols+c+1])
				}
				if r+1 < rows {
					f.link(cur, ids[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}
