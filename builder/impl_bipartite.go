// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - The left side takes the first n1 ids, the right side the next n2.
//   - Edges left[i] - right[j] for i asc, then j asc.
//
// Complexity: O(n1·n2).

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionNodes       = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. It has no triangles,
// so its transitivity is 0.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d, min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		ids := f.alloc(n1 + n2)
		left, right := ids[:n1], ids[n1:]
		for _, u := range left {
			for _, v := range right {
				f.link(u, v)
			}
		}

		return nil
	}
}
