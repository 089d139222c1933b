// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges ids[i] - ids[i+1] for i = 0..n-2, in order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := f.alloc(n)
		for i := 0; i+1 < n; i++ {
			f.link(ids[i], ids[i+1])
		}

		return nil
	}
}
