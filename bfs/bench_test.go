package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/builder"
)

// BenchmarkBFS_Grid measures BFS on a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	adj := builder.MustBuild(nil, builder.Grid(100, 100)).Adjacency()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(adj, 0)
	}
}

// BenchmarkComponents_RandomSparse measures component discovery on a sparse
// random graph with many small pieces.
func BenchmarkComponents_RandomSparse(b *testing.B) {
	adj := builder.MustBuild([]builder.Option{builder.WithSeed(1)}, builder.RandomSparse(2000, 0.0005)).Adjacency()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(adj)
	}
}
