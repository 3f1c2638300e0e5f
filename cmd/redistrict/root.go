// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/redistrict/precinct"
)

type globalFlags struct {
	logLevel   string
	logFormat  string
	symmetrize bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "redistrict",
		Short:         "Contiguous districting by region growing and simulated annealing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&gf.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVar(&gf.symmetrize, "symmetrize", false, "repair one-directional adjacency instead of rejecting it")

	root.AddCommand(
		newRunCmd(gf),
		newSummarizeCmd(gf),
		newInspectCmd(gf),
		newSynthCmd(),
	)
	return root
}

// newLogger builds the slog logger selected by the global flags.
func newLogger(w io.Writer, gf *globalFlags) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(gf.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(gf.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", gf.logFormat)
	}
}

func readGraph(path string, gf *globalFlags) (*precinct.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []precinct.Option
	if gf.symmetrize {
		opts = append(opts, precinct.WithSymmetrize())
	}
	g, err := precinct.ReadJSON(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	return g, nil
}

// createOutput opens path for writing; "-" selects stdout.
func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
