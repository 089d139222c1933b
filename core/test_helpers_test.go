// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"math/rand"

	"github.com/katalvlaran/graphmetrics/core"
)

// pairs is a terse fixture constructor: pairs(1,2, 2,3) → {{1,2},{2,3}}.
func pairs(ids ...core.Vertex) []core.Pair {
	out := make([]core.Pair, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		out = append(out, core.Pair{From: ids[i], To: ids[i+1]})
	}

	return out
}

// twoCliquesPairs is the triangle {4,5,6} plus the K4 {7,8,9,10}, each
// undirected edge listed once.
func twoCliquesPairs() []core.Pair {
	return pairs(
		4, 5, 4, 6, 5, 6,
		7, 8, 7, 9, 7, 10, 8, 9, 8, 10, 9, 10,
	)
}

// randomPairs draws m pairs over [0,n) including occasional loops and
// duplicates, deterministically for a given seed.
func randomPairs(seed int64, n, m int) []core.Pair {
	rng := rand.New(rand.NewSource(seed))
	out := make([]core.Pair, 0, m)
	for i := 0; i < m; i++ {
		out = append(out, core.Pair{
			From: core.Vertex(rng.Intn(n)),
			To:   core.Vertex(rng.Intn(n)),
		})
	}

	return out
}

// set builds a NeighborSet literal.
func set(ids ...core.Vertex) core.NeighborSet {
	s := make(core.NeighborSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}
