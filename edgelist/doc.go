// Package edgelist reads undirected edge lists, from text or from memory, into
// a canonical core.EdgeSet plus its vertex universe.
//
// Text format
//
//   - One edge per line: exactly two integer vertex ids.
//   - Blank lines and lines starting with "#" are ignored.
//   - The delimiter is chosen per line by precedence: tab, then comma, then
//     space. Tokens are trimmed; empty tokens are dropped.
//
// Example input:
//
//	# FromNodeId	ToNodeId
//	0	1
//	1	0
//	1	2
//
// yields two undirected edges, {0,1} and {1,2}, when deduplication is on.
//
// Usage
//
//	res, err := edgelist.ReadFile("graph.tsv")
//	if errors.Is(err, edgelist.ErrInputFormat) {
//	    var le *edgelist.LineError
//	    errors.As(err, &le) // le.Line, le.Text, le.Reason
//	}
//
//	// Keep going past bad lines, but hear about them:
//	res, err = edgelist.ReadFile("graph.tsv",
//	    edgelist.WithSkipMalformed(),
//	    edgelist.WithOnSkip(func(le *edgelist.LineError) { log.Println(le) }),
//	)
//
//	// In-memory pairs bypass text parsing:
//	res, err = edgelist.Load(edgelist.Source{Pairs: pairs})
//
// Options
//
//   - WithDedupe(bool):      collapse reversed/repeated pairs (default true).
//   - WithSkipMalformed():   skip-and-continue instead of fail-fast.
//   - WithOnSkip(fn):        hook for every skipped line.
//   - WithVertices(ids...):  add isolated vertices to the universe.
//
// Errors
//
//   - ErrInputFormat   malformed data line (as *LineError from Read/ReadFile).
//   - ErrConfiguration Load called with an empty Source.
package edgelist
