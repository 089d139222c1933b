// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first allocated id is the hub; the other n-1 ids are leaves.
//   - Spokes are emitted hub → leaf in ascending leaf order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with one hub and n-1 leaves.
// Stars are maximally disassortative: r = -1.
func Star(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := f.alloc(n)
		for _, leaf := range ids[1:] {
			f.link(ids[0], leaf)
		}

		return nil
	}
}
