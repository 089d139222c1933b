// Package transitivity computes the generalized (hypergraph-aware) global
// transitivity coefficient of an undirected graph, after Dewar et al. (2017).
//
// What:
//
//	A wedge is a center vertex c with two distinct neighbors l < r, both
//	different from c. Every wedge is scored by Overlap, and the coefficient
//	is the mean score over all wedges.
//
// On a simple loop-free graph a wedge scores 1 exactly when l and r are
// adjacent, so the coefficient equals the classical global transitivity
// 3·triangles / connected triples. Self-loops never form a wedge leg.
//
// Streaming:
//
// The number of wedges is Σ_v C(deg(v),2), which reaches tens of millions on
// modest social graphs. Wedges are therefore never collected: WedgeIterator
// (and its iter.Seq form Wedges) produces them one at a time, holding only the
// current center's neighbor list. Consumers may stop at any point.
//
//	for w := range transitivity.Wedges(adj) {
//	    if transitivity.Overlap(adj, w) == 0 {
//	        fmt.Println("open:", w)
//	        break
//	    }
//	}
//
// Compute drives the stream end to end:
//
//	c, err := transitivity.Compute(adj,
//	    transitivity.WithContext(ctx),
//	    transitivity.WithProgress(func(p transitivity.Progress) {
//	        log.Printf("%d/%d", p.Processed, p.Total)
//	    }, 500_000),
//	)
//
// Complexity: Θ(Σ_v C(deg(v),2)) time, O(V + max degree) memory.
//
// Errors:
//   - ErrNoTriads when no wedge exists.
//   - ctx.Err() when the context passed through WithContext is done.
package transitivity
