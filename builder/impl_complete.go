// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Unordered pairs {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := f.alloc(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.link(ids[i], ids[j])
			}
		}

		return nil
	}
}
