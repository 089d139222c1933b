// SPDX-License-Identifier: MIT

package assortativity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphmetrics/core"
)

// Compute returns the degree assortativity coefficient of the graph described
// by the double adjacency adj.
//
// Errors:
//   - core.ErrEmptyGraph if adj has no vertices.
//   - ErrUndefinedAssortativity if adj has no edges or every edge endpoint
//     has the same degree.
func Compute(adj core.Adjacency) (float64, error) {
	jdd, err := JointDegreeDistribution(adj)
	if err != nil {
		return 0, err
	}

	return Coefficient(jdd)
}

// JointDegreeDistribution builds the normalized (maxDegree+1)² matrix M of
// endpoint-degree pairs. adj must be a double adjacency; it is not modified.
func JointDegreeDistribution(adj core.Adjacency) (*mat.Dense, error) {
	if len(adj) == 0 {
		return nil, core.ErrEmptyGraph
	}

	deg := adj.Degrees()
	size := adj.MaxDegree() + 1
	m := mat.NewDense(size, size, nil)

	var total float64
	for start, neighbors := range adj {
		i := deg[start]
		for end := range neighbors {
			j := deg[end]
			m.Set(i, j, m.At(i, j)+1)
			total++
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: graph has no edges", ErrUndefinedAssortativity)
	}

	// Divide rather than scale by 1/total so a single full cell stays exactly 1.
	m.Apply(func(_, _ int, v float64) float64 { return v / total }, m)

	return m, nil
}

// Coefficient reduces a normalized joint degree distribution to r.
// Row and column k of jdd stand for degree k.
//
// Errors:
//   - ErrNonSquare if jdd is not square.
//   - ErrNotNormalized if its entries do not sum to 1 within 1e-5.
//   - ErrUndefinedAssortativity if var(q) is zero.
func Coefficient(jdd mat.Matrix) (float64, error) {
	r, c := jdd.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}
	if sum := mat.Sum(jdd); math.Abs(sum-1) > normTolerance {
		return 0, fmt.Errorf("%w: sum is %v", ErrNotNormalized, sum)
	}

	degrees := make([]float64, c)
	q := make([]float64, c)
	col := make([]float64, r)
	for k := range q {
		degrees[k] = float64(k)
		q[k] = floats.Sum(mat.Col(col, k, jdd))
	}

	meanQ := floats.Dot(degrees, q)
	var varQ float64
	for k, qk := range q {
		d := degrees[k] - meanQ
		varQ += qk * d * d
	}
	if varQ < varianceEpsilon {
		return 0, ErrUndefinedAssortativity
	}

	var num float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			num += degrees[i] * degrees[j] * (jdd.At(i, j) - q[i]*q[j])
		}
	}

	return num / varQ, nil
}
