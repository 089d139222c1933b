// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphmetrics/assortativity"
	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/degree"
	"github.com/katalvlaran/graphmetrics/transitivity"
)

// Analyze computes the full Report for the graph (es, universe).
//
// Order of work:
//  1. optional vertex subsample and induced subgraph
//  2. double adjacency
//  3. density, degree percentiles, assortativity, transitivity, components
//
// The first failing metric aborts the run; its error is wrapped with the
// metric name and keeps the package sentinel for errors.Is.
//
// Errors:
//   - ErrOptionViolation for bad options.
//   - core.ErrEmptyGraph when there are no vertices.
//   - assortativity.ErrUndefinedAssortativity, transitivity.ErrNoTriads,
//     or the context error, from the respective phases.
func Analyze(es *core.EdgeSet, universe core.Universe, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Logger

	universe = universe.Union(es.Universe())
	rep := &Report{Percentiles: o.Percentiles}

	if o.Multiplier > 1 {
		sample, err := core.Subsample(universe, 1/o.Multiplier, o.Rand)
		if err != nil {
			return nil, fmt.Errorf("metrics: subsample: %w", err)
		}
		before := universe.Len()
		es = core.Subgraph(es, sample)
		universe = es.Universe()
		rep.Subsampled = true
		log.Info().Int("from", before).Int("to", universe.Len()).Msg("reduced graph")
	}

	rep.Vertices, rep.Edges, rep.Loops = universe.Len(), es.Len(), es.Loops()

	adj := core.DoubleAdjacency(es, universe)

	err := phase(log, "density", func() (err error) {
		rep.Density, err = core.Density(es, universe)

		return err
	})
	if err != nil {
		return nil, err
	}

	err = phase(log, "degree", func() (err error) {
		dist := degree.New(adj)
		if rep.PercentileDegrees, err = dist.Discretize(rep.Percentiles); err != nil {
			return err
		}
		rep.NormalizedDegrees, err = dist.Normalized(rep.Percentiles)

		return err
	})
	if err != nil {
		return nil, err
	}

	err = phase(log, "assortativity", func() (err error) {
		rep.Assortativity, err = assortativity.Compute(adj)

		return err
	})
	if err != nil {
		return nil, err
	}

	err = phase(log, "transitivity", func() (err error) {
		rep.Transitivity, err = transitivity.Compute(adj,
			transitivity.WithContext(o.Ctx),
			transitivity.WithProgress(o.OnProgress, o.ProgressEvery),
		)

		return err
	})
	if err != nil {
		return nil, err
	}

	err = phase(log, "components", func() error {
		comps, err := bfs.Components(adj, bfs.WithContext(o.Ctx))
		if err != nil {
			return err
		}
		rep.Components = len(comps)
		if len(comps) > 0 {
			rep.LargestComponent = len(comps[0])
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().EmbedObject(rep).Msg("graph metrics")

	return rep, nil
}

// phase runs fn, logs its duration and wraps its error with the phase name.
func phase(log zerolog.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	ev := log.Debug()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("phase", name).Dur("took", time.Since(start)).Msg("phase done")
	if err != nil {
		return fmt.Errorf("metrics: %s: %w", name, err)
	}

	return nil
}
