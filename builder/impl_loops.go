// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_loops.go - Isolated(n), SelfLoops(n) and LoopOn(ids...).
//
// These add the pieces classical generators never produce: vertices with no
// edges, and self-loops (each adds 2 to its vertex's degree).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

const (
	methodIsolated  = "Isolated"
	methodSelfLoops = "SelfLoops"
	methodLoopOn    = "LoopOn"
)

// Isolated returns a Constructor that allocates n vertices with no edges.
// n = 0 is a no-op.
func Isolated(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodIsolated, n, ErrTooFewVertices)
		}
		f.alloc(n)

		return nil
	}
}

// SelfLoops returns a Constructor that allocates n vertices, each carrying a
// single self-loop and nothing else.
func SelfLoops(n int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodSelfLoops, n, ErrTooFewVertices)
		}
		for _, v := range f.alloc(n) {
			f.link(v, v)
		}

		return nil
	}
}

// LoopOn returns a Constructor that adds a self-loop to each of ids. Every id
// must have been allocated by an earlier constructor.
func LoopOn(ids ...core.Vertex) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		for _, v := range ids {
			if !f.has(v) {
				return fmt.Errorf("%s: vertex %d not allocated: %w", methodLoopOn, v, ErrConstructFailed)
			}
			f.link(v, v)
		}

		return nil
	}
}
