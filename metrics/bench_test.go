package metrics_test

import (
	"testing"

	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/metrics"
)

func BenchmarkAnalyze_RandomSparse(b *testing.B) {
	f := builder.MustBuild([]builder.Option{builder.WithSeed(1)}, builder.RandomSparse(500, 0.02))
	es, u := f.EdgeSet(), f.Universe()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.Analyze(es, u); err != nil {
			b.Fatal(err)
		}
	}
}
