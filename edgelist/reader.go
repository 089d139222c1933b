// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphmetrics/core"
)

// maxLineBytes bounds a single line; edge-list lines are short, but comment
// headers in some public datasets run long.
const maxLineBytes = 1 << 20

// Read parses a line-oriented edge list from r (see ParseLine for the line
// grammar) and builds the canonical edge set.
//
// By default the first malformed line aborts with a *LineError wrapping
// ErrInputFormat. With WithSkipMalformed the line is skipped, counted in
// Result.Skipped and passed to OnSkip.
//
// Complexity: O(L + E log E) for L lines.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	o := resolve(opts)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		pairs   []core.Pair
		lineNo  int
		data    int
		skipped int
	)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		p, ok, reason := parseLine(text)
		if reason != "" {
			lerr := &LineError{Line: lineNo, Text: text, Reason: reason}
			if !o.SkipMalformed {
				return nil, lerr
			}
			skipped++
			o.OnSkip(lerr)

			continue
		}
		if !ok {
			continue
		}
		data++
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: scan after line %d: %w", lineNo, err)
	}

	res := build(pairs, o)
	res.Lines = data + skipped
	res.Skipped = skipped

	return res, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %q: %w", path, err)
	}
	defer f.Close()

	res, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return res, nil
}

// FromPairs builds a Result from already-tokenized pairs, bypassing text
// parsing. It never fails.
func FromPairs(pairs []core.Pair, opts ...Option) *Result {
	return build(pairs, resolve(opts))
}

// Load reads from src.Path when set, otherwise from src.Pairs.
//
// Errors:
//   - ErrConfiguration if src names neither a path nor a pair collection.
//   - Anything ReadFile returns.
func Load(src Source, opts ...Option) (*Result, error) {
	switch {
	case src.Path != "":
		return ReadFile(src.Path, opts...)
	case src.Pairs != nil:
		return FromPairs(src.Pairs, opts...), nil
	default:
		return nil, ErrConfiguration
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func build(pairs []core.Pair, o Options) *Result {
	es := core.Ingest(pairs, o.Dedupe)

	return &Result{
		Edges:    es,
		Universe: es.Universe().With(o.Vertices...),
	}
}
