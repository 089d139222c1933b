// Package builder generates deterministic edge-list fixtures for tests,
// examples and benchmarks.
//
// A fixture is a list of raw core.Pair values plus the vertex ids that were
// allocated for it. Constructors describe one topology each and are composed
// by Build; every constructor takes a fresh block of ids, so
//
//	f, err := builder.Build(nil, builder.Complete(3), builder.Complete(4), builder.Isolated(3))
//
// yields a triangle on 0..2, a K4 on 3..6 and isolated vertices 7..9.
//
// Topologies:
//   - Star(n), Path(n), Cycle(n), Wheel(n), Complete(n)
//   - CompleteBipartite(n1, n2), Grid(rows, cols)
//   - RandomSparse(n, p), RandomRegular(n, d)  (need WithSeed or WithRand)
//   - Isolated(n), SelfLoops(n), LoopOn(ids...)
//
// Options:
//   - WithSeed(seed) / WithRand(rng): randomness for stochastic constructors.
//   - WithOffset(v): first allocated id.
//
// The Fixture feeds the rest of the module directly:
//
//	es := f.EdgeSet()      // core.Ingest(f.Pairs, true)
//	adj := f.Adjacency()   // core.DoubleAdjacency(es, f.Universe())
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed, always wrapped with the constructor name.
package builder
