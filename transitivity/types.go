// SPDX-License-Identifier: MIT

// Package transitivity defines the wedge type, options and error values for
// the generalized transitivity coefficient.
package transitivity

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphmetrics/core"
)

// ErrNoTriads is returned when the graph has no wedge: no vertex has two
// distinct neighbors other than itself.
var ErrNoTriads = errors.New("transitivity: graph has no wedges")

// Wedge is an open triad: two edges {Center,Left} and {Center,Right} sharing
// Center. Left < Right, and neither equals Center.
type Wedge struct {
	Center core.Vertex
	Left   core.Vertex
	Right  core.Vertex
}

// Progress is a snapshot of a running computation.
type Progress struct {
	// Processed counts wedges consumed so far.
	Processed int64
	// Total is Σ C(|N(v)|,2) over all vertices. It counts neighbor pairs that
	// involve a self-loop too, so it is an upper bound on the wedge count.
	Total int64
}

// Fraction returns Processed/Total, or 0 when Total is 0.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}

	return float64(p.Processed) / float64(p.Total)
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the Compute parameters.
type Options struct {
	// Ctx is checked once per center vertex.
	Ctx context.Context

	// OnProgress receives a snapshot every Every wedges and once when the
	// stream is exhausted.
	OnProgress func(Progress)

	// Every is the progress cadence; <= 0 reports only at completion.
	Every int64
}

// DefaultOptions returns Options with a background context and a no-op
// progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnProgress: func(Progress) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress registers fn to be called every `every` wedges and at the end.
func WithProgress(fn func(Progress), every int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
			o.Every = every
		}
	}
}
