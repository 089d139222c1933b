// Package graphmetrics measures the shape of large undirected graphs read
// from plain edge lists: density, degree distribution percentiles, degree
// assortativity and a generalized (hypergraph-aware) global transitivity.
//
// 🚀 What is graphmetrics?
//
//	A small pipeline of focused packages:
//		• edgelist/      - parse "u<TAB>v" text into a canonical edge set
//		• core/          - Vertex, Edge, EdgeSet, Universe, adjacency views,
//		                   subgraph and random vertex subsampling
//		• degree/        - sorted degree sequence, percentiles, mean
//		• assortativity/ - joint degree distribution and Newman's r
//		• transitivity/  - lazy wedge stream and the overlap coefficient
//		• metrics/       - one-call Analyze returning a Report
//		• builder/       - deterministic graph fixtures for tests and benches
//		• config/        - viper-backed settings and the zerolog logger
//		• cmd/graphmetrics - the command-line front end
//
// ✨ Conventions
//
//   - Graphs are undirected. Reversed and repeated input pairs collapse into
//     one edge; self-loops are kept and counted.
//   - A vertex with a self-loop has degree len(neighbors)+1.
//   - Every package reports failures with sentinel errors usable with
//     errors.Is, wrapped with context by callers.
//   - Nothing here mutates its inputs; all results are fresh values.
//
// Quick start:
//
//	res, err := edgelist.ReadFile("graph.tsv")
//	if err != nil { ... }
//	rep, err := metrics.Analyze(res.Edges, res.Universe)
//	fmt.Println(rep.Density, rep.Assortativity, rep.Transitivity)
//
// Or from a shell:
//
//	graphmetrics --graph graph.tsv --subsample 10 --log-level debug
//
//	go install github.com/katalvlaran/graphmetrics/cmd/graphmetrics@latest
package graphmetrics
