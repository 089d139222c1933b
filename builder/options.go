// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// options.go - functional options for Build.
//
// Option constructors panic on meaningless inputs (nil rng); constructors
// themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphmetrics/core"
)

// Option customizes Build by mutating a builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOffset makes vertex allocation start at first instead of 0.
func WithOffset(first core.Vertex) Option {
	return func(c *builderConfig) { c.offset = first }
}
