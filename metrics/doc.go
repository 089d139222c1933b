// Package metrics runs the whole graph-metrics pipeline over one edge set and
// collects the results in a Report.
//
// Pipeline:
//
//  1. Optional subsample: WithSubsample(m, rng) keeps |V|/m random vertices
//     and the edges among them. The universe of the reduced graph is the
//     set of endpoints of the kept edges.
//  2. Double adjacency (core.DoubleAdjacency).
//  3. Density |E|/|V|².
//  4. Degree percentiles (degree.Distribution.Discretize) and the same
//     values divided by |V|.
//  5. Degree assortativity (assortativity.Compute).
//  6. Generalized transitivity (transitivity.Compute), which honours
//     WithContext and WithProgress.
//  7. Connected components (bfs.Components), which honours WithContext.
//
// The first failing phase stops the run. Errors are wrapped as
// "metrics: <phase>: ..." and keep the sentinel of the package that raised
// them, so callers use errors.Is with core, degree, assortativity or
// transitivity errors.
//
// Example:
//
//	res, _ := edgelist.ReadFile("graph.txt")
//	rep, err := metrics.Analyze(res.Edges, res.Universe,
//	    metrics.WithLogger(log),
//	    metrics.WithSubsample(10, rand.New(rand.NewSource(1))),
//	)
//
// A Report implements zerolog.LogObjectMarshaler and carries json tags.
package metrics
