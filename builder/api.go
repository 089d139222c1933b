// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// api.go - public entry point and the Fixture accumulator.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor allocates its own fresh block of vertex ids, so
//     composing constructors yields disjoint components.
//   - Determinism: same options, seed and constructor order give identical
//     pair lists.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

// Constructor appends one topology to f using the resolved builderConfig.
type Constructor func(f *Fixture, cfg builderConfig) error

// Fixture is the product of Build: raw pairs plus every vertex allocated,
// including vertices no pair touches.
type Fixture struct {
	// Pairs lists each undirected edge once, in emission order.
	Pairs []core.Pair
	// Vertices lists every allocated id in allocation order.
	Vertices []core.Vertex

	next core.Vertex
}

// Build resolves opts and applies all constructors in order.
// Any constructor error is wrapped as "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(opts...)
	f := &Fixture{next: cfg.offset}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *Fixture {
	f, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return f
}

// EdgeSet ingests the pairs with deduplication.
func (f *Fixture) EdgeSet() *core.EdgeSet { return core.Ingest(f.Pairs, true) }

// Universe returns all allocated vertices.
func (f *Fixture) Universe() core.Universe { return core.NewUniverse(f.Vertices...) }

// Adjacency returns the double adjacency of the fixture over its universe.
func (f *Fixture) Adjacency() core.Adjacency {
	return core.DoubleAdjacency(f.EdgeSet(), f.Universe())
}

// alloc reserves n consecutive fresh ids.
func (f *Fixture) alloc(n int) []core.Vertex {
	ids := make([]core.Vertex, n)
	for i := range ids {
		ids[i] = f.next
		f.next++
	}
	f.Vertices = append(f.Vertices, ids...)

	return ids
}

// has reports whether v was allocated by an earlier constructor.
func (f *Fixture) has(v core.Vertex) bool {
	for _, id := range f.Vertices {
		if id == v {
			return true
		}
	}

	return false
}

func (f *Fixture) link(a, b core.Vertex) {
	f.Pairs = append(f.Pairs, core.Pair{From: a, To: b})
}
