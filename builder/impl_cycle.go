// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings need loops or multi-edges.
//   - Edges ids[i] - ids[(i+1) mod n] for i = 0..n-1, in order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n. Every vertex has
// degree 2, so C_n is regular.
func Cycle(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ring(f, f.alloc(n))

		return nil
	}
}

// ring closes ids into a cycle.
func ring(f *Fixture, ids []core.Vertex) {
	for i := range ids {
		f.link(ids[i], ids[(i+1)%len(ids)])
	}
}
