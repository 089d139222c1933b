// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   core.Adjacency
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on adj starting from start. Neighbors are
// expanded in ascending order, so the visit sequence is reproducible.
// Self-loops are ignored.
//
// Returns ErrStartVertexNotFound, ErrOptionViolation, the context error, or
// a wrapped OnVisit error.
//
// Complexity: O(V + E log d) time, O(V) memory.
func BFS(adj core.Adjacency, start core.Vertex, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !adj.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := newWalker(adj, o)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

func newWalker(adj core.Adjacency, o Options) *walker {
	return &walker{
		adj:  adj,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Depth:  make(map[core.Vertex]int),
			Parent: make(map[core.Vertex]core.Vertex),
		},
	}
}

func (w *walker) enqueue(v core.Vertex, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.Neighbors(item.v) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, next)
		}
	}

	return nil
}
