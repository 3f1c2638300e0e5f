// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/precinct"
)

func newSynthCmd() *cobra.Command {
	var (
		rows, cols     int
		seed           int64
		popMin, popMax int64
		maxVotes       int64
		out            string
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic grid precinct graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if popMin < 0 || popMin > popMax {
				return fmt.Errorf("--pop-min %d and --pop-max %d do not form a range", popMin, popMax)
			}
			if maxVotes < 0 {
				return fmt.Errorf("--max-votes %d is negative", maxVotes)
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithPopulation(builder.UniformPopulation(popMin, popMax)),
				builder.WithTallies(builder.RandomTallies(maxVotes)),
			}, builder.Grid(rows, cols))
			if err != nil {
				return err
			}
			w, closeOut, err := createOutput(cmd, out)
			if err != nil {
				return err
			}
			if err = precinct.WriteJSON(w, g); err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}
	f := cmd.Flags()
	f.IntVar(&rows, "rows", 10, "grid rows")
	f.IntVar(&cols, "cols", 10, "grid columns")
	f.Int64Var(&seed, "seed", 1, "generator seed")
	f.Int64Var(&popMin, "pop-min", 800, "minimum unit population")
	f.Int64Var(&popMax, "pop-max", 1200, "maximum unit population")
	f.Int64Var(&maxVotes, "max-votes", 600, "maximum two-party votes per unit")
	f.StringVar(&out, "out", "-", "output JSON path, - for stdout")
	return cmd
}
