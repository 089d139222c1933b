// SPDX-License-Identifier: MIT

// Package assortativity defines the error values returned when a degree
// assortativity coefficient cannot be computed.
package assortativity

import "errors"

// Sentinel errors for assortativity computation.
var (
	// ErrUndefinedAssortativity is returned when the degree distribution seen
	// across edge endpoints has zero variance (every endpoint has the same
	// degree, e.g. a cycle or a complete graph) or when there are no edges.
	ErrUndefinedAssortativity = errors.New("assortativity: undefined for zero-variance degree distribution")

	// ErrNotNormalized is returned by Coefficient when the matrix entries do
	// not sum to 1 within normTolerance.
	ErrNotNormalized = errors.New("assortativity: joint degree distribution is not normalized")

	// ErrNonSquare is returned by Coefficient for a non-square matrix.
	ErrNonSquare = errors.New("assortativity: joint degree distribution is not square")
)

const (
	// normTolerance bounds |sum(M) - 1| accepted by Coefficient.
	normTolerance = 1e-5

	// varianceEpsilon treats smaller variances as zero.
	varianceEpsilon = 1e-12
)
