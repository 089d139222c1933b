// Package bfs provides breadth-first search over a core.Adjacency,
// returning unweighted distances, parent links and visit order, and the
// connected components built on top of it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a Result with Order, Depth and Parent.
//   - Components repeats BFS from every unreached vertex and returns the
//     vertex sets of the connected components, largest first.
//   - Self-loops never contribute a neighbor to the frontier.
//
// Determinism
//
//	Neighbors are expanded in ascending vertex order, so Order is fully
//	reproducible for the same adjacency.
//
// Complexity (V = |Vertices|, E = |Edges|, d = max degree)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(adj, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v core.Vertex, depth int) error { return nil }),
//	)
//
//	comps, err := bfs.Components(adj)
//	fmt.Println(len(comps), len(comps[0]))
//
// Errors
//
//   - ErrStartVertexNotFound  if the start vertex is not in the adjacency.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - the context error       when Ctx is done.
//   - Wrapped OnVisit errors.
package bfs
