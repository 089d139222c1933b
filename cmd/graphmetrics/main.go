// SPDX-License-Identifier: MIT

// Command graphmetrics reads an undirected edge list and prints its density,
// degree percentiles, degree assortativity and generalized transitivity.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	// Ctrl+C cancels the transitivity pass.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(ctx, version).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
