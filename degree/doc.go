// Package degree answers percentile queries over the derived-degree sequence
// of a double adjacency.
//
// New collects one derived degree per adjacency key (isolated vertices count
// with degree 0, a self-loop adds 2) and sorts them ascending. Discretize then
// selects, for each percentile p, the value at
//
//	index = round(p/100 · n), clamped to [0, n-1]
//
// Rounding is half-to-even (math.RoundToEven), so 2.5 selects index 2 and
// 7.5 selects index 8. Values are never interpolated.
//
//	adj := core.DoubleAdjacency(res.Edges, res.Universe)
//	d := degree.New(adj)
//	vals, err := d.Discretize([]float64{0, 25, 50, 75, 100})
//
// Complexity: New is O(V log V); every query is O(len(percentiles)).
//
// Errors:
//   - core.ErrEmptyGraph when the adjacency has no vertices.
//   - ErrPercentileRange for a NaN or out-of-range percentile.
package degree
