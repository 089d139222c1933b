// Package core provides the graph primitives every graphmetrics analyzer
// consumes: integer vertices, canonical undirected edges, immutable edge sets,
// vertex universes and set-based adjacency maps.
//
// The graph G = (V,E) is undirected and unweighted. Self-loops are allowed.
//
// Building a graph:
//
//	es := core.Ingest([]core.Pair{{1, 2}, {2, 1}, {2, 3}, {3, 3}}, true)
//	// es.Len() == 3: {1,2} and {2,1} collapse, {3,3} is a self-loop
//	u := es.Universe().With(4, 5) // add isolated vertices
//	adj := core.DoubleAdjacency(es, u)
//
// Degree semantics:
//
//	A self-loop is stored once in its vertex's neighbor set but counts twice
//	towards the degree. Adjacency.Degree applies that rule:
//
//	  deg(v) = |N(v)| + [v ∈ N(v)]
//
//	so that Σ deg(v) = 2·|E| holds with loops included. Never use len(adj[v])
//	as a degree.
//
// Immutability:
//
//	EdgeSet and Universe never change after construction; With, Union,
//	Subgraph and Subsample build new values. Adjacency is a plain map and is
//	treated as read-only by the degree, assortativity and transitivity
//	packages.
//
// Complexity (V = |vertices|, E = |edges|):
//
//	Ingest           O(E log E) with dedupe
//	SingleAdjacency  O(E)
//	DoubleAdjacency  O(V + E)
//	Subgraph         O(E)
//	Adjacency.Degree O(1)
//
// Errors:
//
//	ErrEmptyGraph      – zero vertices where a statistic needs at least one
//	ErrInvalidFraction – Subsample fraction outside (0,1]
//	ErrNilRand         – Subsample without a random source
package core
