// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// graphReport is the output of `redistrict inspect`.
type graphReport struct {
	Units           int   `json:"units"`
	Edges           int   `json:"edges"`
	TotalPopulation int64 `json:"total_population"`
	TotalTallyA     int64 `json:"total_tally_a"`
	TotalTallyB     int64 `json:"total_tally_b"`
	Isolated        int   `json:"isolated_units"`
	Components      []int `json:"component_sizes"`
}

func newInspectCmd(gf *globalFlags) *cobra.Command {
	var graphPath string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print unit, edge, population and component statistics of a graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(graphPath, gf)
			if err != nil {
				return err
			}
			rep := graphReport{
				Units:           g.Len(),
				Edges:           g.EdgeCount(),
				TotalPopulation: g.TotalPopulation(),
			}
			for i := 0; i < g.Len(); i++ {
				u := g.Unit(i)
				rep.TotalTallyA += u.TallyA
				rep.TotalTallyB += u.TallyB
				if g.Degree(i) == 0 {
					rep.Isolated++
				}
			}
			for _, c := range g.Components() {
				rep.Components = append(rep.Components, len(c))
			}
			return writeJSON(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "precinct graph JSON (required)")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
