// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphmetrics/core"
)

// Delimiters in precedence order: the first one present in a line wins.
const (
	delimTab   = "\t"
	delimComma = ","
	delimSpace = " "

	commentPrefix = "#"
)

// ParseLine tokenizes one edge-list line.
//
// It returns ok == false for lines to ignore (blank, or starting with "#").
// A data line is split on the first delimiter type it contains, tab before
// comma before space; tokens are trimmed and empty tokens dropped, so runs of
// spaces are tolerated. Exactly two base-10 integers must remain.
//
// Errors:
//   - ErrInputFormat (wrapped) for any other token count or a non-integer.
func ParseLine(line string) (p core.Pair, ok bool, err error) {
	p, ok, reason := parseLine(line)
	if reason != "" {
		return core.Pair{}, false, fmt.Errorf("%w: %s", ErrInputFormat, reason)
	}

	return p, ok, nil
}

// parseLine is ParseLine with the failure reason as a plain string.
func parseLine(line string) (core.Pair, bool, string) {
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
		return core.Pair{}, false, ""
	}
	p, reason := parseData(line)
	if reason != "" {
		return core.Pair{}, false, reason
	}

	return p, true, ""
}

// parseData returns a non-empty reason when line is malformed.
func parseData(line string) (core.Pair, string) {
	var tokens [2]string
	n := 0
	for _, raw := range strings.Split(line, delimiter(line)) {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		if n == len(tokens) {
			return core.Pair{}, "more than two tokens"
		}
		tokens[n] = tok
		n++
	}
	if n != len(tokens) {
		return core.Pair{}, fmt.Sprintf("want 2 tokens, got %d", n)
	}

	from, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return core.Pair{}, fmt.Sprintf("token %q is not an integer", tokens[0])
	}
	to, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil {
		return core.Pair{}, fmt.Sprintf("token %q is not an integer", tokens[1])
	}

	return core.Pair{From: core.Vertex(from), To: core.Vertex(to)}, ""
}

func delimiter(line string) string {
	switch {
	case strings.Contains(line, delimTab):
		return delimTab
	case strings.Contains(line, delimComma):
		return delimComma
	default:
		return delimSpace
	}
}
