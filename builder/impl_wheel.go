// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_wheel.go - Wheel(n).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): the rim C_{n-1} needs at least 3 vertices.
//   - The first allocated id is the hub. Rim edges come first, then spokes.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for W_n = C_{n-1} plus a hub joined to every
// rim vertex.
func Wheel(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids := f.alloc(n)
		hub, rim := ids[0], ids[1:]
		ring(f, rim)
		for _, v := range rim {
			f.link(hub, v)
		}

		return nil
	}
}
