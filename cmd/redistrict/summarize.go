// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/plan"
)

func newSummarizeCmd(gf *globalFlags) *cobra.Command {
	var graphPath, assignPath, configPath string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Report populations, tallies and seats of an existing plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := plan.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = plan.LoadConfig(configPath); err != nil {
					return err
				}
			}
			g, err := readGraph(graphPath, gf)
			if err != nil {
				return err
			}
			f, err := os.Open(assignPath)
			if err != nil {
				return err
			}
			defer f.Close()

			a, err := partition.ReadCSV(f, g, cfg.Districts)
			if err != nil {
				return fmt.Errorf("read assignment %s: %w", assignPath, err)
			}
			sum, err := plan.Summarize(g, a.Map(g), cfg)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "precinct graph JSON (required)")
	cmd.Flags().StringVar(&assignPath, "assignment", "", "unit,district CSV (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "run configuration YAML")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("assignment")
	return cmd
}
