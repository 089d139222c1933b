// SPDX-License-Identifier: MIT

package assortativity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphmetrics/assortativity"
	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/core"
)

// pearson correlates start and end degrees over every directed endpoint pair
// of a double adjacency, the textbook definition of r.
func pearson(adj core.Adjacency) float64 {
	var xs, ys []float64
	for v, set := range adj {
		for u := range set {
			xs = append(xs, float64(adj.Degree(v)))
			ys = append(ys, float64(adj.Degree(u)))
		}
	}

	return stat.Correlation(xs, ys, nil)
}

func adjOf(pairs []core.Pair, extra ...core.Vertex) core.Adjacency {
	es := core.Ingest(pairs, true)

	return core.DoubleAdjacency(es, es.Universe().With(extra...))
}

func TestCompute_MatchesPearson(t *testing.T) {
	build := func(cons ...builder.Constructor) core.Adjacency {
		f, err := builder.Build(nil, cons...)
		require.NoError(t, err)

		return f.Adjacency()
	}

	tests := []struct {
		name string
		adj  core.Adjacency
	}{
		{"star", build(builder.Star(6))},
		{"two cliques", build(builder.Complete(3), builder.Complete(4), builder.Isolated(3))},
		{"path", build(builder.Path(5))},
		{"star and path", build(builder.Star(4), builder.Path(4))},
		{"wheel with loops", build(builder.Wheel(6), builder.LoopOn(0, 3))},
		{"hubs and leaves", adjOf([]core.Pair{
			{From: 3, To: 1}, {From: 3, To: 2},
			{From: 6, To: 4}, {From: 6, To: 5}, {From: 6, To: 7},
			{From: 8, To: 7}, {From: 8, To: 9}, {From: 8, To: 10}, {From: 9, To: 10},
		})},
		{"hubs and leaves with loop", adjOf([]core.Pair{
			{From: 3, To: 3}, {From: 3, To: 1}, {From: 3, To: 2},
			{From: 6, To: 4}, {From: 6, To: 5}, {From: 6, To: 7},
			{From: 8, To: 7}, {From: 8, To: 9}, {From: 8, To: 10}, {From: 8, To: 11},
		})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := assortativity.Compute(tc.adj)
			require.NoError(t, err)
			assert.InDelta(t, pearson(tc.adj), got, 1e-9)
			assert.GreaterOrEqual(t, got, -1-1e-12)
			assert.LessOrEqual(t, got, 1+1e-12)
		})
	}
}

func TestCompute_KnownValues(t *testing.T) {
	star := builder.MustBuild(nil, builder.Star(5)).Adjacency()
	r, err := assortativity.Compute(star)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)

	// Loops on 1,2,3; a looped triangle; a K4: every edge joins equal degrees.
	mixed := adjOf([]core.Pair{
		{From: 1, To: 1}, {From: 2, To: 2}, {From: 3, To: 3},
		{From: 4, To: 4}, {From: 4, To: 5}, {From: 4, To: 6},
		{From: 5, To: 5}, {From: 5, To: 6}, {From: 6, To: 6},
		{From: 7, To: 8}, {From: 7, To: 9}, {From: 7, To: 10},
		{From: 8, To: 9}, {From: 8, To: 10}, {From: 9, To: 10},
	})
	r, err = assortativity.Compute(mixed)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestJointDegreeDistribution(t *testing.T) {
	binary := adjOf([]core.Pair{
		{From: 4, To: 5}, {From: 4, To: 6}, {From: 5, To: 6},
		{From: 7, To: 8}, {From: 7, To: 9}, {From: 7, To: 10},
		{From: 8, To: 9}, {From: 8, To: 10}, {From: 9, To: 10},
	}, 1, 2, 3)

	jdd, err := assortativity.JointDegreeDistribution(binary)
	require.NoError(t, err)
	want := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 6, 0,
		0, 0, 0, 12,
	})
	want.Scale(1.0/18, want)
	assert.True(t, mat.EqualApprox(want, jdd, 1e-12), "got\n%v", mat.Formatted(jdd))

	// One loop on an otherwise isolated vertex, and one on a triangle corner.
	looped := adjOf([]core.Pair{
		{From: 1, To: 1},
		{From: 4, To: 4}, {From: 4, To: 5}, {From: 4, To: 6}, {From: 5, To: 6},
		{From: 7, To: 8}, {From: 7, To: 9}, {From: 7, To: 10},
		{From: 8, To: 9}, {From: 8, To: 10}, {From: 9, To: 10},
	}, 2, 3)

	jdd, err = assortativity.JointDegreeDistribution(looped)
	require.NoError(t, err)
	want = mat.NewDense(5, 5, []float64{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 3, 0, 2,
		0, 0, 0, 12, 0,
		0, 0, 2, 0, 1,
	})
	want.Scale(1.0/20, want)
	assert.True(t, mat.EqualApprox(want, jdd, 1e-12), "got\n%v", mat.Formatted(jdd))
	assert.InDelta(t, 1.0, mat.Sum(jdd), 1e-12)
	assert.True(t, mat.EqualApprox(jdd, jdd.T(), 0), "symmetric")
}

func TestCoefficient(t *testing.T) {
	eye := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	eye.Scale(0.25, eye)
	r, err := assortativity.Coefficient(eye)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	dis := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		0, 0, 2, 2,
		0, 2, 2, 4,
		0, 2, 4, 0,
	})
	dis.Scale(1.0/18, dis)
	r, err = assortativity.Coefficient(dis)
	require.NoError(t, err)
	assert.InDelta(t, -19.0/44.0, r, 1e-12)
	assert.InDelta(t, -0.431818181818182, r, 1e-7)
}

func TestCoefficient_Errors(t *testing.T) {
	_, err := assortativity.Coefficient(mat.NewDense(2, 3, []float64{0.5, 0, 0, 0, 0, 0.5}))
	assert.ErrorIs(t, err, assortativity.ErrNonSquare)

	_, err = assortativity.Coefficient(mat.NewDense(2, 2, []float64{1, 1, 1, 1}))
	assert.ErrorIs(t, err, assortativity.ErrNotNormalized)

	_, err = assortativity.Coefficient(mat.NewDense(3, 3, []float64{0, 0, 0, 0, 0, 0, 0, 0, 1}))
	assert.ErrorIs(t, err, assortativity.ErrUndefinedAssortativity)
}

func TestCompute_Undefined(t *testing.T) {
	seeded := []builder.Option{builder.WithSeed(11)}
	tests := []struct {
		name string
		opts []builder.Option
		cons []builder.Constructor
	}{
		{"cycle", nil, []builder.Constructor{builder.Cycle(6)}},
		{"complete", nil, []builder.Constructor{builder.Complete(5)}},
		{"random 3-regular", seeded, []builder.Constructor{builder.RandomRegular(12, 3)}},
		{"no edges", nil, []builder.Constructor{builder.Isolated(3)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(tc.opts, tc.cons...)
			require.NoError(t, err)

			_, err = assortativity.Compute(f.Adjacency())
			assert.ErrorIs(t, err, assortativity.ErrUndefinedAssortativity)
		})
	}

	_, err := assortativity.Compute(core.Adjacency{})
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestCompute_MixedRegularComponents(t *testing.T) {
	// C4 (degree 2) next to K4 (degree 3): each component is regular but the
	// graph is not, and every edge joins equal degrees.
	adj := builder.MustBuild(nil, builder.Cycle(4), builder.Complete(4)).Adjacency()

	r, err := assortativity.Compute(adj)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	adj := builder.MustBuild(nil, builder.Star(5), builder.LoopOn(2)).Adjacency()
	before := adj.Degrees()
	neighbors := adj.Neighbors(0)

	_, err := assortativity.Compute(adj)
	require.NoError(t, err)
	assert.Equal(t, before, adj.Degrees())
	assert.Equal(t, neighbors, adj.Neighbors(0))
}
