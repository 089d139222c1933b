// SPDX-License-Identifier: MIT

package transitivity

import (
	"context"
	"iter"
	"slices"

	"github.com/katalvlaran/graphmetrics/core"
)

// WedgeIterator streams the wedges of a double adjacency lazily.
//
// Centers are visited in ascending order; for each center the unordered
// pairs of its non-self neighbors are produced in lexicographic order. Only
// the current center's neighbor list is held in memory. The iterator is
// single-pass and cannot be restarted.
//
//	it := transitivity.NewWedgeIterator(adj)
//	for it.Next() {
//	    w := it.Wedge()
//	    ...
//	}
type WedgeIterator struct {
	adj     core.Adjacency
	ctx     context.Context
	centers []core.Vertex
	ci      int

	center core.Vertex
	nbrs   []core.Vertex
	i, j   int

	cur       Wedge
	processed int64
	total     int64
	err       error
}

// NewWedgeIterator prepares a stream over adj. adj is only read.
// Complexity: O(V log V) to order the centers.
func NewWedgeIterator(adj core.Adjacency) *WedgeIterator {
	return newWedgeIterator(context.Background(), adj)
}

func newWedgeIterator(ctx context.Context, adj core.Adjacency) *WedgeIterator {
	var total int64
	for _, set := range adj {
		n := int64(len(set))
		total += n * (n - 1) / 2
	}

	return &WedgeIterator{
		adj:     adj,
		ctx:     ctx,
		centers: adj.Vertices(),
		total:   total,
	}
}

// Next advances to the next wedge and reports whether there is one.
func (it *WedgeIterator) Next() bool {
	for {
		if it.i+1 < len(it.nbrs) {
			if it.j < len(it.nbrs) {
				it.cur = Wedge{Center: it.center, Left: it.nbrs[it.i], Right: it.nbrs[it.j]}
				it.j++
				it.processed++

				return true
			}
			it.i++
			it.j = it.i + 1

			continue
		}
		if !it.nextCenter() {
			return false
		}
	}
}

// nextCenter loads the neighbor list of the next center.
func (it *WedgeIterator) nextCenter() bool {
	if it.err != nil || it.ci >= len(it.centers) {
		it.nbrs = nil

		return false
	}
	if err := it.ctx.Err(); err != nil {
		it.err = err
		it.nbrs = nil

		return false
	}

	it.center = it.centers[it.ci]
	it.ci++
	it.nbrs = it.nbrs[:0]
	for u := range it.adj[it.center] {
		if u != it.center {
			it.nbrs = append(it.nbrs, u)
		}
	}
	slices.Sort(it.nbrs)
	it.i, it.j = 0, 1

	return true
}

// Wedge returns the wedge produced by the last successful Next.
func (it *WedgeIterator) Wedge() Wedge { return it.cur }

// Processed returns the number of wedges produced so far.
func (it *WedgeIterator) Processed() int64 { return it.processed }

// Total returns the Σ C(|N(v)|,2) estimate of the stream length.
func (it *WedgeIterator) Total() int64 { return it.total }

// Err returns the context error that stopped the stream, if any.
func (it *WedgeIterator) Err() error { return it.err }

// Wedges returns the wedge stream of adj for range-over-func consumers.
// Breaking out of the loop stops the stream.
func Wedges(adj core.Adjacency) iter.Seq[Wedge] {
	return func(yield func(Wedge) bool) {
		it := NewWedgeIterator(adj)
		for it.Next() {
			if !yield(it.Wedge()) {
				return
			}
		}
	}
}
