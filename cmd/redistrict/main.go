// SPDX-License-Identifier: MIT
// Command redistrict draws contiguous, population-balanced district plans
// from a precinct graph and reports on existing plans.
//
//	redistrict synth --rows 20 --cols 20 --seed 7 --out grid.json
//	redistrict run --graph grid.json --config run.yaml --out plan.csv --summary summary.json
//	redistrict summarize --graph grid.json --assignment plan.csv --config run.yaml
//	redistrict inspect --graph grid.json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
