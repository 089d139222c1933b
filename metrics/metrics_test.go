// SPDX-License-Identifier: MIT

package metrics_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/assortativity"
	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/degree"
	"github.com/katalvlaran/graphmetrics/metrics"
	"github.com/katalvlaran/graphmetrics/transitivity"
)

// paw is a triangle 0-1-2 with a pendant edge 2-3.
func paw() *core.EdgeSet {
	return core.Ingest([]core.Pair{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}, {From: 2, To: 3}}, true)
}

func TestAnalyze_Paw(t *testing.T) {
	es := paw()
	rep, err := metrics.Analyze(es, es.Universe())
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Vertices)
	assert.Equal(t, 4, rep.Edges)
	assert.Zero(t, rep.Loops)
	assert.False(t, rep.Subsampled)
	assert.InDelta(t, 0.25, rep.Density, 1e-12)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, rep.Percentiles)
	assert.Equal(t, []int{1, 2, 2, 3, 3}, rep.PercentileDegrees)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.5, 0.75, 0.75}, rep.NormalizedDegrees, 1e-12)
	assert.InDelta(t, -5.0/7.0, rep.Assortativity, 1e-9)
	assert.InDelta(t, 0.6, rep.Transitivity, 1e-12)
	assert.Equal(t, 1, rep.Components)
	assert.Equal(t, 4, rep.LargestComponent)
}

func TestAnalyze_IsolatedVerticesCount(t *testing.T) {
	es := paw()
	rep, err := metrics.Analyze(es, core.NewUniverse(9))
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Vertices, "endpoints are merged into the universe")
	assert.InDelta(t, 4.0/25.0, rep.Density, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3, 3}, rep.PercentileDegrees)
	assert.InDelta(t, 0.6, rep.Transitivity, 1e-12)
	assert.Equal(t, 2, rep.Components)
	assert.Equal(t, 4, rep.LargestComponent)
}

func TestAnalyze_CustomPercentiles(t *testing.T) {
	es := paw()
	rep, err := metrics.Analyze(es, es.Universe(), metrics.WithPercentiles(50))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rep.PercentileDegrees)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, metrics.DefaultPercentiles)
}

func TestAnalyze_SubsampleMatchesManualPipeline(t *testing.T) {
	f := builder.MustBuild([]builder.Option{builder.WithSeed(5)}, builder.RandomSparse(60, 0.2))
	es, u := f.EdgeSet(), f.Universe()

	sample, err := core.Subsample(u, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	sub := core.Subgraph(es, sample)
	want, wantErr := metrics.Analyze(sub, sub.Universe())

	got, err := metrics.Analyze(es, u, metrics.WithSubsample(2, rand.New(rand.NewSource(7))))
	if wantErr != nil {
		require.Error(t, err)

		return
	}
	require.NoError(t, err)
	assert.True(t, got.Subsampled)
	assert.LessOrEqual(t, got.Vertices, 30)
	assert.Equal(t, want.Vertices, got.Vertices)
	assert.Equal(t, want.Edges, got.Edges)
	assert.Equal(t, want.PercentileDegrees, got.PercentileDegrees)
	assert.InDelta(t, want.Density, got.Density, 1e-12)
	assert.InDelta(t, want.Assortativity, got.Assortativity, 1e-9)
	assert.InDelta(t, want.Transitivity, got.Transitivity, 1e-9)
}

func TestAnalyze_MultiplierOneKeepsGraph(t *testing.T) {
	es := paw()
	rep, err := metrics.Analyze(es, es.Universe(), metrics.WithSubsample(1, nil))
	require.NoError(t, err)
	assert.False(t, rep.Subsampled)
	assert.Equal(t, 4, rep.Vertices)
}

func TestAnalyze_OptionErrors(t *testing.T) {
	es := paw()
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		opt  metrics.Option
	}{
		{"multiplier below one", metrics.WithSubsample(0.5, rng)},
		{"multiplier NaN", metrics.WithSubsample(nan(), rng)},
		{"missing rng", metrics.WithSubsample(3, nil)},
		{"no percentiles", metrics.WithPercentiles()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metrics.Analyze(es, es.Universe(), tc.opt)
			assert.ErrorIs(t, err, metrics.ErrOptionViolation)
		})
	}
}

func TestAnalyze_PhaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		es     *core.EdgeSet
		u      core.Universe
		opts   []metrics.Option
		target error
		prefix string
	}{
		{
			name:   "empty graph",
			es:     core.Ingest(nil, true),
			target: core.ErrEmptyGraph,
			prefix: "metrics: density",
		},
		{
			name:   "percentile out of range",
			es:     paw(),
			opts:   []metrics.Option{metrics.WithPercentiles(50, 150)},
			target: degree.ErrPercentileRange,
			prefix: "metrics: degree",
		},
		{
			name:   "regular graph",
			es:     builder.MustBuild(nil, builder.Complete(5)).EdgeSet(),
			target: assortativity.ErrUndefinedAssortativity,
			prefix: "metrics: assortativity",
		},
		{
			name:   "edge with a loop",
			es:     builder.MustBuild(nil, builder.Path(2), builder.LoopOn(0)).EdgeSet(),
			target: transitivity.ErrNoTriads,
			prefix: "metrics: transitivity",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metrics.Analyze(tc.es, tc.u, tc.opts...)
			require.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), tc.prefix)
		})
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	es := paw()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := metrics.Analyze(es, es.Universe(), metrics.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Progress(t *testing.T) {
	es := paw()
	var seen []transitivity.Progress
	_, err := metrics.Analyze(es, es.Universe(), metrics.WithProgress(func(p transitivity.Progress) {
		seen = append(seen, p)
	}, 2))
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	assert.Equal(t, transitivity.Progress{Processed: 5, Total: 5}, seen[len(seen)-1])
}

func TestAnalyze_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	es := paw()

	_, err := metrics.Analyze(es, es.Universe(), metrics.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	for _, phase := range []string{"density", "degree", "assortativity", "transitivity", "components"} {
		assert.Contains(t, out, `"phase":"`+phase+`"`)
	}
	assert.Contains(t, out, `"message":"graph metrics"`)
	assert.Contains(t, out, `"transitivity":0.6`)
}

func TestAnalyze_LogsFailingPhase(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)
	es := builder.MustBuild(nil, builder.Cycle(5)).EdgeSet()

	_, err := metrics.Analyze(es, es.Universe(), metrics.WithLogger(log))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"phase":"assortativity"`)
	assert.NotContains(t, buf.String(), "graph metrics")
}

func nan() float64 {
	var zero float64

	return zero / zero
}
