// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/plan"
)

type runFlags struct {
	graph       string
	config      string
	out         string
	summary     string
	seed        int64
	maxIter     int
	metricsAddr string
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw a district plan",
		Long: "Grow districts from packed seeds, refine them by simulated annealing and\n" +
			"write the unit,district table plus an optional JSON summary.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, gf, rf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.graph, "graph", "", "precinct graph JSON (required)")
	f.StringVar(&rf.config, "config", "", "run configuration YAML (defaults when empty)")
	f.StringVar(&rf.out, "out", "-", "assignment CSV output, - for stdout")
	f.StringVar(&rf.summary, "summary", "", "summary JSON output")
	f.Int64Var(&rf.seed, "seed", 0, "annealing seed (overrides config)")
	f.IntVar(&rf.maxIter, "max-iter", -1, "annealing iterations (overrides config)")
	f.StringVar(&rf.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func runPlan(cmd *cobra.Command, gf *globalFlags, rf *runFlags) error {
	log, err := newLogger(cmd.ErrOrStderr(), gf)
	if err != nil {
		return err
	}

	cfg := plan.DefaultConfig()
	if rf.config != "" {
		if cfg, err = plan.LoadConfig(rf.config); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Anneal.Seed = rf.seed
	}
	if rf.maxIter >= 0 {
		cfg.Anneal.MaxIter = rf.maxIter
	}

	g, err := readGraph(rf.graph, gf)
	if err != nil {
		return err
	}

	if rf.metricsAddr != "" {
		shutdown := serveMetrics(rf.metricsAddr, log)
		defer shutdown()
	}

	res, err := plan.Run(cmd.Context(), g, cfg, plan.WithLogger(log))
	if err != nil {
		return err
	}

	w, closeOut, err := createOutput(cmd, rf.out)
	if err != nil {
		return err
	}
	if err = partition.WriteCSV(w, res.Graph, res.Plan); err != nil {
		_ = closeOut()
		return fmt.Errorf("write assignment: %w", err)
	}
	if err = closeOut(); err != nil {
		return err
	}

	if rf.summary != "" {
		sw, closeSum, err := createOutput(cmd, rf.summary)
		if err != nil {
			return err
		}
		if err = writeJSON(sw, res.Summary); err != nil {
			_ = closeSum()
			return fmt.Errorf("write summary: %w", err)
		}
		return closeSum()
	}
	return nil
}

// serveMetrics exposes /metrics until the returned shutdown is called.
func serveMetrics(addr string, log *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("metrics: listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics: server stopped", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
