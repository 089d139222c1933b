// SPDX-License-Identifier: MIT

package bfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/graphmetrics/core"
)

// Components splits adj into connected components by running BFS from every
// vertex not reached yet, in ascending vertex order.
//
// Each component is sorted ascending; components are ordered by size,
// largest first, ties broken by smallest vertex. Isolated vertices form
// singleton components. MaxDepth is ignored.
//
// Complexity: O(V log V + E log d).
func Components(adj core.Adjacency, opts ...Option) ([][]core.Vertex, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0

	seen := make(map[core.Vertex]struct{}, len(adj))
	var out [][]core.Vertex
	for _, v := range adj.Vertices() {
		if _, ok := seen[v]; ok {
			continue
		}
		w := newWalker(adj, o)
		w.enqueue(v, 0)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := w.res.Order
		for _, u := range comp {
			seen[u] = struct{}{}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	slices.SortStableFunc(out, func(a, b []core.Vertex) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return cmp.Compare(a[0], b[0])
	})

	return out, nil
}
