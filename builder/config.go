// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng    = nil (pure, deterministic constructors only)
//   - offset = 0   (first allocated vertex id)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphmetrics/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// offset is the first vertex id handed out by Build.
	offset core.Vertex
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
