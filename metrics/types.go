// SPDX-License-Identifier: MIT

// Package metrics defines the options, errors and report of Analyze.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphmetrics/transitivity"
)

// ErrOptionViolation is returned by Analyze when an Option was given a
// meaningless value.
var ErrOptionViolation = errors.New("metrics: invalid option supplied")

// DefaultPercentiles are the quartile cut points reported by default.
var DefaultPercentiles = []float64{0, 25, 50, 75, 100}

// Report holds every statistic Analyze computes. After subsampling, the
// counts describe the sampled subgraph.
type Report struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
	Loops    int `json:"loops"`

	// Subsampled is set when WithSubsample reduced the graph.
	Subsampled bool `json:"subsampled"`

	// Density is |E| / |V|².
	Density float64 `json:"density"`

	Percentiles       []float64 `json:"percentiles"`
	PercentileDegrees []int     `json:"percentile_degrees"`
	// NormalizedDegrees are PercentileDegrees divided by Vertices.
	NormalizedDegrees []float64 `json:"normalized_degrees"`

	Assortativity float64 `json:"assortativity"`
	Transitivity  float64 `json:"transitivity"`

	// Components counts connected components, isolated vertices included.
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`
}

// MarshalZerologObject lets a Report be embedded in a log event.
func (r *Report) MarshalZerologObject(e *zerolog.Event) {
	e.Int("vertices", r.Vertices).
		Int("edges", r.Edges).
		Int("loops", r.Loops).
		Bool("subsampled", r.Subsampled).
		Float64("density", r.Density).
		Floats64("percentiles", r.Percentiles).
		Ints("percentile_degrees", r.PercentileDegrees).
		Floats64("normalized_degrees", r.NormalizedDegrees).
		Float64("assortativity", r.Assortativity).
		Float64("transitivity", r.Transitivity).
		Int("components", r.Components).
		Int("largest_component", r.LargestComponent)
}

// Option configures Analyze via functional arguments.
type Option func(*Options)

// Options holds the parameters of one Analyze call.
type Options struct {
	// Ctx cancels the transitivity and component passes.
	Ctx context.Context

	// Logger receives phase timings and results. Disabled by default.
	Logger zerolog.Logger

	// Percentiles to discretize the degree distribution at.
	Percentiles []float64

	// Multiplier > 1 keeps |V|/Multiplier random vertices; 1 keeps all.
	Multiplier float64
	// Rand drives the vertex sample.
	Rand *rand.Rand

	// OnProgress and ProgressEvery are handed to transitivity.WithProgress.
	OnProgress    func(transitivity.Progress)
	ProgressEvery int64

	err error
}

// DefaultOptions returns Options with a background context, a disabled
// logger, DefaultPercentiles and no subsampling.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zerolog.Nop(),
		Percentiles: slices.Clone(DefaultPercentiles),
		Multiplier:  1,
		OnProgress:  func(transitivity.Progress) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes phase logs to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithPercentiles replaces DefaultPercentiles. An empty list is rejected.
func WithPercentiles(ps ...float64) Option {
	return func(o *Options) {
		if len(ps) == 0 {
			o.err = fmt.Errorf("%w: no percentiles", ErrOptionViolation)

			return
		}
		o.Percentiles = slices.Clone(ps)
	}
}

// WithSubsample measures a random subgraph induced by |V|/multiplier
// vertices instead of the whole graph. multiplier must be >= 1 and rng
// non-nil; multiplier == 1 disables sampling.
func WithSubsample(multiplier float64, rng *rand.Rand) Option {
	return func(o *Options) {
		switch {
		case !(multiplier >= 1):
			o.err = fmt.Errorf("%w: subsample multiplier %v < 1", ErrOptionViolation, multiplier)
		case rng == nil && multiplier != 1:
			o.err = fmt.Errorf("%w: subsample needs a rng", ErrOptionViolation)
		default:
			o.Multiplier = multiplier
			o.Rand = rng
		}
	}
}

// WithProgress reports transitivity progress every `every` wedges.
func WithProgress(fn func(transitivity.Progress), every int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
			o.ProgressEvery = every
		}
	}
}
