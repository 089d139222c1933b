// SPDX-License-Identifier: MIT

package transitivity

import (
	"slices"

	"github.com/katalvlaran/graphmetrics/core"
)

// Compute returns the generalized transitivity coefficient of the double
// adjacency adj: the mean Overlap over every wedge.
//
// Errors:
//   - ErrNoTriads if no wedge exists.
//   - the context's error if Options.Ctx is done before the stream ends.
//
// Complexity: Θ(Σ_v C(deg(v),2)) time, O(max deg) extra memory.
func Compute(adj core.Adjacency, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := newWedgeIterator(o.Ctx, adj)
	var sum float64
	for it.Next() {
		sum += Overlap(adj, it.Wedge())
		if o.Every > 0 && it.Processed()%o.Every == 0 {
			o.OnProgress(Progress{Processed: it.Processed(), Total: it.Total()})
		}
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	o.OnProgress(Progress{Processed: it.Processed(), Total: it.Total()})
	if it.Processed() == 0 {
		return 0, ErrNoTriads
	}

	return sum / float64(it.Processed()), nil
}

// Overlap scores how far the wedge w is closed. With e1 = {Center,Left} and
// e2 = {Center,Right}:
//
//	diff1 = e1 \ e2, diff2 = e2 \ e1
//	(|N(diff1) ∩ diff2| + |N(diff2) ∩ diff1|) / (|diff1| + |diff2|)
//
// where N(S) is the union of the neighbor sets of S. On a binary graph this
// is 1 when Left and Right are adjacent and 0 otherwise. A degenerate wedge
// with Left == Right scores 0.
func Overlap(adj core.Adjacency, w Wedge) float64 {
	e1 := [2]core.Vertex{w.Center, w.Left}
	e2 := [2]core.Vertex{w.Center, w.Right}

	var b1, b2 [2]core.Vertex
	diff1 := minus(b1[:0], e1, e2)
	diff2 := minus(b2[:0], e2, e1)
	if len(diff1)+len(diff2) == 0 {
		return 0
	}
	hits := reached(adj, diff1, diff2) + reached(adj, diff2, diff1)

	return float64(hits) / float64(len(diff1)+len(diff2))
}

// minus appends to dst the members of a that are not in b.
func minus(dst []core.Vertex, a, b [2]core.Vertex) []core.Vertex {
	for _, v := range a {
		if v != b[0] && v != b[1] && !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}

	return dst
}

// reached counts members of to that neighbor some member of from, i.e.
// |N(from) ∩ to|.
func reached(adj core.Adjacency, from, to []core.Vertex) int {
	n := 0
	for _, y := range to {
		for _, x := range from {
			if adj.Contains(x, y) {
				n++

				break
			}
		}
	}

	return n
}
