package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/decompose"
	"github.com/katalvlaran/lvsteiner/dualascent"
)

// instanceInfo is the YAML document printed by "info".
type instanceInfo struct {
	Name       string `yaml:"name,omitempty"`
	Nodes      int    `yaml:"nodes"`
	Edges      int    `yaml:"edges"`
	Terminals  int    `yaml:"terminals"`
	Components int    `yaml:"components"`
	Connected  bool   `yaml:"terminals_connected"`

	Bridges       int   `yaml:"bridges,omitempty"`
	Required      int   `yaml:"required_bridges,omitempty"`
	Parts         int   `yaml:"parts,omitempty"`
	Dropped       int   `yaml:"dropped_nodes,omitempty"`
	Approximation int64 `yaml:"approximation,omitempty"`
	LowerBound    int64 `yaml:"lower_bound,omitempty"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.stp|->",
		Short: "Print size, structure and bounds of an STP instance as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := readInstance(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			g := inst.Graph
			terms := g.Terminals()
			comps, err := bfs.Components(g, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			info := instanceInfo{
				Name:       inst.Name,
				Nodes:      g.NodeCount(),
				Edges:      g.EdgeCount(),
				Terminals:  len(terms),
				Components: len(comps),
				Connected:  len(terms) > 0 && bfs.Connected(g, terms),
			}
			if info.Connected {
				plan, err := decompose.Split(cmd.Context(), g)
				if err != nil {
					return err
				}
				info.Bridges, info.Required = plan.Bridges, len(plan.Required)
				info.Parts, info.Dropped = len(plan.Parts), plan.Dropped

				approx, err := g.Approximation()
				if err != nil {
					return err
				}
				info.Approximation = approx.Cost

				da, err := dualascent.Compute(g, terms[0], terms, dualascent.WithContext(cmd.Context()))
				if err != nil {
					return fmt.Errorf("lower bound: %w", err)
				}
				info.LowerBound = da.LowerBound
			}

			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(info); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
