// SPDX-License-Identifier: MIT

package edgelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/edgelist"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want core.Pair
		ok   bool
		bad  bool
	}{
		{name: "tab", line: "1\t2", want: core.Pair{From: 1, To: 2}, ok: true},
		{name: "comma", line: "3,4", want: core.Pair{From: 3, To: 4}, ok: true},
		{name: "space", line: "5 6", want: core.Pair{From: 5, To: 6}, ok: true},
		{name: "tab beats space", line: "7 \t 8", want: core.Pair{From: 7, To: 8}, ok: true},
		{name: "comma beats space", line: " 9 , 10 ", want: core.Pair{From: 9, To: 10}, ok: true},
		{name: "trimmed tokens", line: "  11\t  12  ", want: core.Pair{From: 11, To: 12}, ok: true},
		{name: "runs of spaces", line: "13   14", want: core.Pair{From: 13, To: 14}, ok: true},
		{name: "carriage return", line: "15\t16\r", want: core.Pair{From: 15, To: 16}, ok: true},
		{name: "negative ids", line: "-1,-2", want: core.Pair{From: -1, To: -2}, ok: true},
		{name: "self loop", line: "4 4", want: core.Pair{From: 4, To: 4}, ok: true},
		{name: "blank", line: "", ok: false},
		{name: "whitespace only", line: " \t ", ok: false},
		{name: "comment", line: "# FromNodeId ToNodeId", ok: false},
		{name: "one token", line: "17", bad: true},
		{name: "three tokens", line: "1 2 3", bad: true},
		{name: "not an integer", line: "a b", bad: true},
		{name: "float", line: "1.5\t2", bad: true},
		{name: "mixed delimiters split on tab", line: "1,2\t3", bad: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok, err := edgelist.ParseLine(tc.line)
			if tc.bad {
				assert.ErrorIs(t, err, edgelist.ErrInputFormat)
				assert.False(t, ok)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, p)
			}
		})
	}
}

func TestRead_DedupesDirectedInput(t *testing.T) {
	input := strings.Join([]string{
		"# directed list, most edges twice",
		"4 5", "5 4",
		"4 6", "6 4",
		"5 6",
		"",
		"7 8", "8 7",
		"7 9",
		"7 10", "10 7",
		"8 9", "9 8",
		"10 8",
		"9 10", "10 9",
	}, "\n")

	res, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 9, res.Edges.Len())
	assert.Equal(t, 15, res.Lines)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, []core.Vertex{4, 5, 6, 7, 8, 9, 10}, res.Universe.Sorted())
}

func TestRead_NoDedupe(t *testing.T) {
	res, err := edgelist.Read(strings.NewReader("1,2\n2,3\n"), edgelist.WithDedupe(false))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}, res.Edges.Edges())
}

func TestRead_FailFast(t *testing.T) {
	input := "1 2\n2 3\nbroken line here\n3 4\n"

	res, err := edgelist.Read(strings.NewReader(input))
	assert.Nil(t, res)
	require.ErrorIs(t, err, edgelist.ErrInputFormat)

	var le *edgelist.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "broken line here", le.Text)
	assert.Equal(t, "more than two tokens", le.Reason)
}

func TestRead_SkipMalformed(t *testing.T) {
	input := "1 2\nx y\n2 3\n7\n3 4\n"
	var skipped []int

	res, err := edgelist.Read(strings.NewReader(input),
		edgelist.WithSkipMalformed(),
		edgelist.WithOnSkip(func(le *edgelist.LineError) { skipped = append(skipped, le.Line) }),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Edges.Len())
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []int{2, 4}, skipped)
}

func TestRead_WithVertices(t *testing.T) {
	res, err := edgelist.Read(strings.NewReader("4\t5\n"), edgelist.WithVertices(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{1, 2, 3, 4, 5}, res.Universe.Sorted())
	assert.Equal(t, []core.Vertex{4, 5}, res.Edges.Universe().Sorted())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# header\n1\t2\n2\t1\n2\t3\n"), 0o600))

	res, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Edges.Len())

	_, err = edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_MalformedKeepsLineError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n1,2,3\n"), 0o600))

	_, err := edgelist.ReadFile(path)
	var le *edgelist.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
	assert.Contains(t, err.Error(), path)
}

func TestLoad(t *testing.T) {
	_, err := edgelist.Load(edgelist.Source{})
	assert.ErrorIs(t, err, edgelist.ErrConfiguration)

	res, err := edgelist.Load(edgelist.Source{Pairs: []core.Pair{{From: 2, To: 1}, {From: 1, To: 2}}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 1, V: 2}}, res.Edges.Edges())

	empty, err := edgelist.Load(edgelist.Source{Pairs: []core.Pair{}})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Edges.Len())

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 6\n"), 0o600))
	res, err = edgelist.Load(edgelist.Source{Path: path, Pairs: []core.Pair{{From: 1, To: 2}}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 5, V: 6}}, res.Edges.Edges(), "path wins over pairs")
}
