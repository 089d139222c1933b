// SPDX-License-Identifier: MIT

package core

import (
	"iter"
	"slices"
)

// EdgeSet is an immutable collection of canonical edges together with the
// vertex universe spanned by their endpoints.
//
// An EdgeSet built by Ingest with deduplication holds at most one edge per
// unordered vertex pair. Nothing in graphmetrics mutates an EdgeSet after
// construction; accessors hand out copies or read-only iterators.
type EdgeSet struct {
	edges    []Edge
	universe Universe
	loops    int
	sorted   bool // edges ordered by (U, V)
}

// Ingest builds an EdgeSet from raw pairs.
//
// With dedupe == true two pairs denote the same edge iff their unordered
// vertex sets are equal, so (a,b), (b,a) and a repeated (a,b) collapse into one
// edge. A self-loop (v,v) is its own edge and never merges with a non-loop.
// The result is sorted by (U, V) so iteration is deterministic regardless of
// input order.
//
// With dedupe == false pairs are canonicalized but kept verbatim and in input
// order; the caller guarantees there are no duplicate or reversed pairs.
//
// The universe of the result is the union of all endpoints.
//
// Complexity: O(P log P) with dedupe, O(P) without, where P = len(pairs).
func Ingest(pairs []Pair, dedupe bool) *EdgeSet {
	edges := make([]Edge, 0, len(pairs))
	ids := make(map[Vertex]struct{}, len(pairs))

	var seen map[Edge]struct{}
	if dedupe {
		seen = make(map[Edge]struct{}, len(pairs))
	}

	for _, p := range pairs {
		e := NewEdge(p.From, p.To)
		ids[e.U] = struct{}{}
		ids[e.V] = struct{}{}
		if dedupe {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
		}
		edges = append(edges, e)
	}
	if dedupe {
		slices.SortFunc(edges, compareEdges)
	}

	return newEdgeSet(edges, Universe{ids: ids}, dedupe)
}

// newEdgeSet takes ownership of edges.
func newEdgeSet(edges []Edge, u Universe, sorted bool) *EdgeSet {
	loops := 0
	for _, e := range edges {
		if e.IsLoop() {
			loops++
		}
	}

	return &EdgeSet{edges: edges, universe: u, loops: loops, sorted: sorted}
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.edges)
}

// Loops returns the number of self-loop edges.
func (s *EdgeSet) Loops() int {
	if s == nil {
		return 0
	}

	return s.loops
}

// Edges returns a copy of the edges in iteration order.
func (s *EdgeSet) Edges() []Edge {
	if s == nil {
		return nil
	}

	return slices.Clone(s.edges)
}

// All yields every edge in iteration order without copying the backing slice.
func (s *EdgeSet) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if s == nil {
			return
		}
		for _, e := range s.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Universe returns the vertices touched by at least one edge.
func (s *EdgeSet) Universe() Universe {
	if s == nil {
		return Universe{}
	}

	return s.universe
}

// Contains reports whether the unordered pair {a, b} is an edge of s.
// Complexity: O(log E) for deduplicated sets, O(E) otherwise.
func (s *EdgeSet) Contains(a, b Vertex) bool {
	if s == nil {
		return false
	}
	target := NewEdge(a, b)
	if s.sorted {
		_, ok := slices.BinarySearchFunc(s.edges, target, compareEdges)

		return ok
	}

	return slices.Contains(s.edges, target)
}
