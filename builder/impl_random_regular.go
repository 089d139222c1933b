// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_random_regular.go - RandomRegular(n, d).
//
// Stub matching: every vertex contributes d stubs, the stub list is shuffled
// and consecutive stubs are paired. A pairing that produces a self-loop or a
// repeated pair is rejected as a whole and the list is reshuffled, up to
// maxStubMatchingAttempts times.
//
// Contract:
//   - n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   - An rng is required (else ErrNeedRandSource).
//   - ErrConstructFailed when no simple pairing was found.
//
// Complexity: O(n·d) per attempt.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor for a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if simplePairing(stubs) {
				ids := f.alloc(n)
				for i := 0; i < len(stubs); i += 2 {
					f.link(ids[stubs[i]], ids[stubs[i+1]])
				}

				return nil
			}
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free graph
// without repeated edges.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
