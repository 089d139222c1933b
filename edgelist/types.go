// SPDX-License-Identifier: MIT

// Package edgelist provides options, error definitions and result types for
// reading undirected edge lists into a core.EdgeSet.
package edgelist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

// Sentinel errors for edge-list ingestion.
var (
	// ErrInputFormat is returned when a data line does not hold exactly two
	// integer tokens. Line-level details travel in *LineError.
	ErrInputFormat = errors.New("edgelist: malformed input line")

	// ErrConfiguration is returned by Load when neither a file path nor an
	// in-memory pair collection is supplied.
	ErrConfiguration = errors.New("edgelist: no edge source configured")
)

// LineError describes one malformed line. It unwraps to ErrInputFormat.
type LineError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Text is the raw line as read.
	Text string
	// Reason says what was wrong with it.
	Reason string
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("%s: line %d %q: %s", ErrInputFormat, e.Line, e.Text, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInputFormat) match.
func (e *LineError) Unwrap() error { return ErrInputFormat }

// Option configures ingestion via functional arguments.
type Option func(*Options)

// Options holds the ingestion parameters.
type Options struct {
	// Dedupe collapses reversed and repeated pairs into one edge.
	Dedupe bool

	// SkipMalformed switches from fail-fast to skip-and-continue.
	SkipMalformed bool

	// OnSkip is called for every skipped line when SkipMalformed is set.
	OnSkip func(*LineError)

	// Vertices are added to the universe even if no edge touches them.
	Vertices []core.Vertex
}

// DefaultOptions returns Options with deduplication on, fail-fast parsing,
// a no-op OnSkip hook and no extra vertices.
func DefaultOptions() Options {
	return Options{
		Dedupe:        true,
		SkipMalformed: false,
		OnSkip:        func(*LineError) {},
	}
}

// WithDedupe toggles deduplication. Disable it only for inputs known to list
// every undirected edge exactly once; it saves the dedupe map on huge files.
func WithDedupe(on bool) Option {
	return func(o *Options) { o.Dedupe = on }
}

// WithSkipMalformed makes malformed lines non-fatal. They are counted in
// Result.Skipped and reported through OnSkip.
func WithSkipMalformed() Option {
	return func(o *Options) { o.SkipMalformed = true }
}

// WithOnSkip registers a callback for skipped lines.
func WithOnSkip(fn func(*LineError)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithVertices adds isolated vertices to the resulting universe.
func WithVertices(ids ...core.Vertex) Option {
	return func(o *Options) { o.Vertices = append(o.Vertices, ids...) }
}

// Source names where Load takes its pairs from. Path wins when both are set.
type Source struct {
	// Path of a text edge list.
	Path string
	// Pairs is an already-tokenized edge list. A non-nil empty slice is a
	// valid (empty) source.
	Pairs []core.Pair
}

// Result holds the outcome of ingestion.
//   - Edges: the canonical edge set.
//   - Universe: endpoints of Edges plus any WithVertices ids.
//   - Lines: data lines seen (text sources only).
//   - Skipped: malformed lines skipped under WithSkipMalformed.
type Result struct {
	Edges    *core.EdgeSet
	Universe core.Universe
	Lines    int
	Skipped  int
}
