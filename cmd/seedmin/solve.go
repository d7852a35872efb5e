package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedmin/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "solve [graph|-]",
		Short: "Search a small seed set that reaches the target spread",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			opts, err := a.cfg.SolverOptions()
			if err != nil {
				return err
			}
			g, err := a.readGraph(cmd, graphArg(args))
			if err != nil {
				return err
			}

			opts.Seed = a.seed()
			opts.Logger = a.logger
			res, err := solver.Solve(g, opts)
			if err != nil {
				return err
			}

			rep := newSolveReport(res, opts.Seed)
			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), rep)
			}
			return rep.writeText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or yaml")

	return cmd
}
