// SPDX-License-Identifier: MIT

package degree

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphmetrics/core"
)

// Distribution is the ascending derived-degree sequence of one graph.
// It is immutable after New.
type Distribution struct {
	sorted []int
}

// New builds the distribution from a double adjacency. adj is only read.
func New(adj core.Adjacency) *Distribution {
	seq := make([]int, 0, len(adj))
	for v := range adj {
		seq = append(seq, adj.Degree(v))
	}
	slices.Sort(seq)

	return &Distribution{sorted: seq}
}

// Len returns the number of vertices n.
func (d *Distribution) Len() int { return len(d.sorted) }

// Degrees returns a copy of the ascending sequence.
func (d *Distribution) Degrees() []int { return slices.Clone(d.sorted) }

// Max returns the largest degree, or 0 when empty.
func (d *Distribution) Max() int {
	if len(d.sorted) == 0 {
		return 0
	}

	return d.sorted[len(d.sorted)-1]
}

// Mean returns the average degree.
func (d *Distribution) Mean() (float64, error) {
	if len(d.sorted) == 0 {
		return 0, core.ErrEmptyGraph
	}
	xs := make([]float64, len(d.sorted))
	for i, k := range d.sorted {
		xs[i] = float64(k)
	}

	return stat.Mean(xs, nil), nil
}

// Discretize returns the nearest-rank degree for every percentile, in input
// order.
func (d *Distribution) Discretize(percentiles []float64) ([]int, error) {
	n := len(d.sorted)
	if n == 0 {
		return nil, core.ErrEmptyGraph
	}

	out := make([]int, len(percentiles))
	for i, p := range percentiles {
		idx, err := rank(p, n)
		if err != nil {
			return nil, err
		}
		out[i] = d.sorted[idx]
	}

	return out, nil
}

// Normalized is Discretize with every value divided by n.
func (d *Distribution) Normalized(percentiles []float64) ([]float64, error) {
	vals, err := d.Discretize(percentiles)
	if err != nil {
		return nil, err
	}
	n := float64(len(d.sorted))
	out := make([]float64, len(vals))
	for i, k := range vals {
		out[i] = float64(k) / n
	}

	return out, nil
}

// rank maps percentile p onto an index of a sequence of length n > 0.
func rank(p float64, n int) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: %v", ErrPercentileRange, p)
	}
	idx := int(math.RoundToEven(p / 100 * float64(n)))

	return min(max(idx, 0), n-1), nil
}
