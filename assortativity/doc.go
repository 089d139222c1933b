// Package assortativity computes Newman's degree assortativity coefficient r
// of an undirected graph from its joint degree distribution (JDD).
//
// What:
//
//	M[i][j] = fraction of directed endpoint pairs (start,end) in the double
//	          adjacency with deg(start)=i and deg(end)=j
//	q[k]    = Σ_i M[i][k]
//	r       = Σ_{i,j} i·j·(M[i][j] - q[i]·q[j]) / var(q)
//
// Each non-loop edge contributes both of its directions; a self-loop
// contributes its single (v,v) pair once. Degrees are always derived degrees,
// so a self-loop adds 2 to its vertex.
//
// r is the Pearson correlation of endpoint degrees over those directed pairs:
// +1 when edges only join equal degrees, negative when hubs attach to leaves.
//
// Usage:
//
//	adj := core.DoubleAdjacency(es, universe)
//	r, err := assortativity.Compute(adj)
//	if errors.Is(err, assortativity.ErrUndefinedAssortativity) {
//	    // regular graph or no edges: r has no meaning
//	}
//
// The two steps are exposed separately: JointDegreeDistribution returns the
// normalized matrix as a gonum *mat.Dense, and Coefficient accepts any
// normalized square mat.Matrix.
//
// Complexity: O(V + E) to fill M, O(D²) to reduce it, D = max degree + 1.
// Memory: O(D²).
package assortativity
