// SPDX-License-Identifier: MIT

package core

import (
	"maps"
	"slices"
)

// NeighborSet is the set of vertices adjacent to one vertex.
type NeighborSet map[Vertex]struct{}

// Adjacency maps each vertex to its neighbor set.
//
// Two shapes are produced by this package:
//
//   - single: each undirected edge recorded once, U → V (SingleAdjacency).
//   - double: both directions recorded, every universe vertex present
//     (DoubleAdjacency).
//
// A self-loop puts v into its own neighbor set exactly once. Set semantics
// cannot say "twice", so the degree of v must always be read through Degree,
// never through len(adj[v]).
//
// Analyzers treat an Adjacency as read-only.
type Adjacency map[Vertex]NeighborSet

// SingleAdjacency records each edge of s once, in the U → V direction.
// Every endpoint appears as a key, possibly with an empty set.
// Complexity: O(E).
func SingleAdjacency(s *EdgeSet) Adjacency {
	adj := make(Adjacency, s.Universe().Len())
	for v := range s.Universe().All() {
		adj[v] = NeighborSet{}
	}
	for e := range s.All() {
		adj.link(e.U, e.V)
	}

	return adj
}

// DoubleAdjacency records both directions of every edge of s. Every vertex of
// universe is present as a key, defaulting to an empty neighbor set; edge
// endpoints outside universe are added as well, so the key set is the union.
// Complexity: O(V + E).
func DoubleAdjacency(s *EdgeSet, universe Universe) Adjacency {
	adj := make(Adjacency, max(universe.Len(), s.Universe().Len()))
	for v := range universe.All() {
		adj[v] = NeighborSet{}
	}
	for e := range s.All() {
		adj.link(e.U, e.V)
		if !e.IsLoop() {
			adj.link(e.V, e.U)
		}
	}

	return adj
}

// link inserts to into from's neighbor set, creating both keys on demand.
func (a Adjacency) link(from, to Vertex) {
	set, ok := a[from]
	if !ok {
		set = NeighborSet{}
		a[from] = set
	}
	set[to] = struct{}{}
	if _, ok = a[to]; !ok {
		a[to] = NeighborSet{}
	}
}

// Has reports whether v is a key of the adjacency.
func (a Adjacency) Has(v Vertex) bool {
	_, ok := a[v]

	return ok
}

// Contains reports whether u is a neighbor of v.
func (a Adjacency) Contains(v, u Vertex) bool {
	_, ok := a[v][u]

	return ok
}

// HasLoop reports whether v carries a self-loop.
func (a Adjacency) HasLoop(v Vertex) bool { return a.Contains(v, v) }

// Degree returns the derived degree of v: the neighbor count plus one extra
// when v is its own neighbor, so a self-loop contributes 2 in total.
// Unknown vertices have degree 0.
func (a Adjacency) Degree(v Vertex) int {
	set := a[v]
	d := len(set)
	if _, loop := set[v]; loop {
		d++
	}

	return d
}

// Degrees returns the derived degree of every key.
// Complexity: O(V).
func (a Adjacency) Degrees() map[Vertex]int {
	out := make(map[Vertex]int, len(a))
	for v := range a {
		out[v] = a.Degree(v)
	}

	return out
}

// MaxDegree returns the largest derived degree, or 0 for an empty adjacency.
func (a Adjacency) MaxDegree() int {
	best := 0
	for v := range a {
		if d := a.Degree(v); d > best {
			best = d
		}
	}

	return best
}

// Vertices returns the keys in ascending order.
// Complexity: O(V log V).
func (a Adjacency) Vertices() []Vertex {
	return slices.Sorted(maps.Keys(a))
}

// Neighbors returns the neighbors of v in ascending order as a fresh slice.
// Complexity: O(d log d).
func (a Adjacency) Neighbors(v Vertex) []Vertex {
	return slices.Sorted(maps.Keys(a[v]))
}

// DegreeSum returns the sum of derived degrees over all keys. On a double
// adjacency this equals 2·(non-loop edges) + 2·(loop edges).
func (a Adjacency) DegreeSum() int {
	sum := 0
	for v := range a {
		sum += a.Degree(v)
	}

	return sum
}
