// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Subgraph returns the edges of s whose endpoints both belong to allowed.
// The result is a fresh EdgeSet sharing no storage with s; its universe is the
// set of endpoints of the kept edges. Widen it with Universe().With when
// isolated members of allowed must be kept.
// Complexity: O(E).
func Subgraph(s *EdgeSet, allowed Universe) *EdgeSet {
	kept := make([]Edge, 0, s.Len())
	ids := make(map[Vertex]struct{})
	for e := range s.All() {
		if !allowed.Has(e.U) || !allowed.Has(e.V) {
			continue
		}
		kept = append(kept, e)
		ids[e.U] = struct{}{}
		ids[e.V] = struct{}{}
	}

	return newEdgeSet(kept, Universe{ids: ids}, s != nil && s.sorted)
}

// Subsample draws floor(|u|·fraction) distinct vertices from u without
// replacement. Vertices are visited in ascending order before shuffling, so a
// seeded rng reproduces the same sample.
//
// Errors:
//   - ErrInvalidFraction if fraction is not in (0,1].
//   - ErrNilRand if rng is nil.
//
// Complexity: O(V log V).
func Subsample(u Universe, fraction float64, rng *rand.Rand) (Universe, error) {
	if !(fraction > 0 && fraction <= 1) {
		return Universe{}, fmt.Errorf("%w: %v", ErrInvalidFraction, fraction)
	}
	if rng == nil {
		return Universe{}, ErrNilRand
	}

	ids := u.Sorted()
	k := sampleSize(len(ids), fraction)
	// Partial Fisher–Yates: the first k slots end up holding the sample.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	return NewUniverse(ids[:k]...), nil
}

// sampleSize is floor(n·fraction), except that a product within 1e-9 of an
// integer snaps to it, so fraction = 1/m with m dividing n yields exactly n/m.
func sampleSize(n int, fraction float64) int {
	x := float64(n) * fraction
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		return int(r)
	}

	return int(x)
}

// Density returns |E| / |V|² for the edges of s over universe.
//
// Errors:
//   - ErrEmptyGraph if universe is empty.
func Density(s *EdgeSet, universe Universe) (float64, error) {
	n := universe.Len()
	if n == 0 {
		return 0, ErrEmptyGraph
	}

	return float64(s.Len()) / (float64(n) * float64(n)), nil
}
