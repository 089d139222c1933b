// SPDX-License-Identifier: MIT

// Package core defines the Vertex, Edge, EdgeSet, Universe and Adjacency types
// shared by every analyzer in graphmetrics.
//
// This file declares the primitive value types and the package sentinel errors.
//
// Errors:
//
//	ErrEmptyGraph  - a statistic needs at least one vertex but the graph has none.
//	ErrInvalidFraction - subsample fraction outside (0,1].
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates a computation that needs at least one vertex
	// was handed a graph with zero vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrInvalidFraction indicates a subsample fraction outside (0,1].
	ErrInvalidFraction = errors.New("core: subsample fraction out of range")

	// ErrNilRand indicates a stochastic helper was called without a *rand.Rand.
	ErrNilRand = errors.New("core: rng is nil")
)

// Vertex is an opaque integer vertex identifier.
type Vertex int64

// String renders the vertex in base 10.
func (v Vertex) String() string { return strconv.FormatInt(int64(v), 10) }

// Pair is a raw vertex-id pair as read from an edge list. It may be listed in
// either direction and may repeat; Ingest canonicalizes it into an Edge.
type Pair struct {
	From Vertex
	To   Vertex
}

// Edge is an unordered pair of vertices in canonical form (U <= V).
// A self-loop has U == V.
type Edge struct {
	U Vertex
	V Vertex
}

// NewEdge returns the canonical Edge for the unordered pair {a, b}.
func NewEdge(a, b Vertex) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// IsLoop reports whether e is a self-loop.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Other returns the endpoint of e opposite to v. For a self-loop it returns v.
func (e Edge) Other(v Vertex) Vertex {
	if e.U == v {
		return e.V
	}

	return e.U
}

// String renders the edge as "u-v".
func (e Edge) String() string { return e.U.String() + "-" + e.V.String() }

// compareEdges orders edges by U, then V.
func compareEdges(a, b Edge) int {
	switch {
	case a.U < b.U:
		return -1
	case a.U > b.U:
		return 1
	case a.V < b.V:
		return -1
	case a.V > b.V:
		return 1
	}

	return 0
}
