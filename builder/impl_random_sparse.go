// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is included
// independently with probability p. Self-loops are never drawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i asc, j asc, one rng.Float64 per pair.
// Complexity: O(n²) trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := f.alloc(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					f.link(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
