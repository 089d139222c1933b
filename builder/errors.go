// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w and the
// method name, e.g. "Cycle: n=2 < min=3: builder: parameter too small".
//
// Validation order when several checks fail:
//   - ErrTooFewVertices first (sizes, degrees).
//   - ErrInvalidProbability next.
//   - ErrNeedRandSource next.
//   - ErrConstructFailed only after retries are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not produce the topology:
// stub matching ran out of attempts, a nil constructor was passed, or a loop
// was requested on a vertex that was never allocated.
var ErrConstructFailed = errors.New("builder: construction failed")
