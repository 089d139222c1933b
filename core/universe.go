// SPDX-License-Identifier: MIT

package core

import (
	"iter"
	"maps"
	"slices"
)

// Universe is an immutable set of vertices. It may hold vertices that no edge
// touches (isolated vertices added with With).
//
// The zero Universe is empty and ready to use.
type Universe struct {
	ids map[Vertex]struct{}
}

// NewUniverse returns a Universe holding ids. Duplicates collapse.
// Complexity: O(len(ids)).
func NewUniverse(ids ...Vertex) Universe {
	set := make(map[Vertex]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return Universe{ids: set}
}

// With returns a new Universe holding the receiver's vertices plus ids.
// The receiver is left untouched.
// Complexity: O(|U| + len(ids)).
func (u Universe) With(ids ...Vertex) Universe {
	set := make(map[Vertex]struct{}, len(u.ids)+len(ids))
	for id := range u.ids {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return Universe{ids: set}
}

// Union returns a new Universe holding the vertices of both u and other.
func (u Universe) Union(other Universe) Universe {
	set := make(map[Vertex]struct{}, len(u.ids)+len(other.ids))
	for id := range u.ids {
		set[id] = struct{}{}
	}
	for id := range other.ids {
		set[id] = struct{}{}
	}

	return Universe{ids: set}
}

// Has reports whether v belongs to the universe.
func (u Universe) Has(v Vertex) bool {
	_, ok := u.ids[v]

	return ok
}

// Len returns the number of vertices.
func (u Universe) Len() int { return len(u.ids) }

// Sorted returns the vertices in ascending order as a fresh slice.
// Complexity: O(V log V).
func (u Universe) Sorted() []Vertex {
	return slices.Sorted(maps.Keys(u.ids))
}

// All yields every vertex in unspecified order.
func (u Universe) All() iter.Seq[Vertex] {
	return maps.Keys(u.ids)
}
