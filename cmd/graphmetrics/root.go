// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmetrics/config"
	"github.com/katalvlaran/graphmetrics/edgelist"
	"github.com/katalvlaran/graphmetrics/metrics"
	"github.com/katalvlaran/graphmetrics/transitivity"
)

var errNoGraph = errors.New("graphmetrics: --graph is required")

// input holds flags that do not map onto a config key.
type input struct {
	configPath string
	noDedupe   bool
	asJSON     bool
}

func newRootCommand(ctx context.Context, version string) *cobra.Command {
	cfg := config.New()
	in := &input{}

	cmd := &cobra.Command{
		Use:          "graphmetrics --graph FILE",
		Short:        "Compute density, degree percentiles, assortativity and transitivity of an edge list",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.configPath != "" {
				if err := cfg.LoadFromFile(in.configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("no-dedupe") {
				cfg.Set(config.KeyInputDedupe, !in.noDedupe)
			}

			return run(ctx, cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("graph", "", "input edge list: two vertex ids per line, tab or space separated, # starts a comment")
	flags.Float64("subsample", 1, "measure a random 1/multiplier of the vertices (2 samples 50%)")
	flags.String("percentiles", "0,25,50,75,100", "comma-separated degree percentiles to report")
	flags.Int64("seed", 1, "seed for --subsample")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Int64("progress-every", 500_000, "log transitivity progress every N wedges (0 disables)")
	flags.Bool("skip-malformed", false, "skip malformed lines instead of failing")
	flags.BoolVar(&in.noDedupe, "no-dedupe", false, "trust the input to list every edge once")
	flags.StringVar(&in.configPath, "config", "", "YAML, JSON or TOML config file")
	flags.BoolVar(&in.asJSON, "json", false, "print the report as JSON")

	for key, name := range map[string]string{
		config.KeyInputPath:          "graph",
		config.KeySubsample:          "subsample",
		config.KeyPercentiles:        "percentiles",
		config.KeySeed:               "seed",
		config.KeyLogLevel:           "log-level",
		config.KeyProgressEvery:      "progress-every",
		config.KeyInputSkipMalformed: "skip-malformed",
	} {
		// Every name above is registered, so BindFlag cannot fail.
		_ = cfg.BindFlag(key, flags.Lookup(name))
	}

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in *input, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.Logger(stderr)

	path := cfg.InputPath()
	if path == "" {
		return errNoGraph
	}
	percentiles, err := cfg.Percentiles()
	if err != nil {
		return err
	}

	readOpts := []edgelist.Option{edgelist.WithDedupe(cfg.Dedupe())}
	if cfg.SkipMalformed() {
		readOpts = append(readOpts,
			edgelist.WithSkipMalformed(),
			edgelist.WithOnSkip(func(le *edgelist.LineError) {
				log.Warn().Int("line", le.Line).Str("reason", le.Reason).Msg("skipped malformed line")
			}),
		)
	}
	res, err := edgelist.ReadFile(path, readOpts...)
	if err != nil {
		return err
	}
	log.Info().Str("graph", path).
		Int("lines", res.Lines).Int("skipped", res.Skipped).
		Int("edges", res.Edges.Len()).Int("vertices", res.Universe.Len()).
		Msg("loaded edge list")

	rep, err := metrics.Analyze(res.Edges, res.Universe,
		metrics.WithContext(ctx),
		metrics.WithLogger(log),
		metrics.WithPercentiles(percentiles...),
		metrics.WithSubsample(cfg.Subsample(), rand.New(rand.NewSource(cfg.Seed()))),
		metrics.WithProgress(progressLogger(log), cfg.ProgressEvery()),
	)
	if err != nil {
		return err
	}

	if in.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	}

	return writeReport(stdout, rep)
}

func progressLogger(log zerolog.Logger) func(transitivity.Progress) {
	return func(p transitivity.Progress) {
		log.Info().Int64("processed", p.Processed).Int64("total", p.Total).
			Str("done", fmt.Sprintf("%.2f%%", 100*p.Fraction())).
			Msg("transitivity progress")
	}
}

// writeReport prints rep as plain text, one metric per line.
func writeReport(w io.Writer, rep *metrics.Report) error {
	var b strings.Builder
	if rep.Subsampled {
		fmt.Fprintf(&b, "Sampled vertices: %d\n", rep.Vertices)
	}
	fmt.Fprintf(&b, "Vertices: %d, edges: %d, self-loops: %d\n", rep.Vertices, rep.Edges, rep.Loops)
	fmt.Fprintf(&b, "Graph density: %v\n", rep.Density)
	fmt.Fprintf(&b, "Degree & percentile: %s\n", pairs(rep.PercentileDegrees, rep.Percentiles))
	fmt.Fprintf(&b, "Normalized degree & percentile: %s\n", pairs(rep.NormalizedDegrees, rep.Percentiles))
	fmt.Fprintf(&b, "Degree assortativity: %v\n", rep.Assortativity)
	fmt.Fprintf(&b, "Global transitivity: %v\n", rep.Transitivity)
	fmt.Fprintf(&b, "Connected components: %d, largest: %d\n", rep.Components, rep.LargestComponent)

	_, err := io.WriteString(w, b.String())

	return err
}

func pairs[T int | float64](values []T, percentiles []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v - %v%%", v, percentiles[i])
	}

	return strings.Join(parts, ", ")
}
