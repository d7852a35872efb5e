package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/seeds"
	"github.com/katalvlaran/seedmin/solver"
)

type simulateReport struct {
	Model     string  `yaml:"model"`
	Seeds     []int   `yaml:"seeds"`
	Activated int     `yaml:"activated,omitempty"`
	Rounds    int     `yaml:"rounds,omitempty"`
	Runs      int     `yaml:"runs,omitempty"`
	Mean      float64 `yaml:"mean,omitempty"`
	StdDev    float64 `yaml:"stddev,omitempty"`
	StdErr    float64 `yaml:"stderr,omitempty"`
	Min       float64 `yaml:"min,omitempty"`
	Max       float64 `yaml:"max,omitempty"`

	// Layers lists the 1-based nodes each round activated, when traced.
	// For IC it comes from one extra cascade drawn after the estimate.
	Layers [][]int `yaml:"layers,omitempty"`
}

func (r simulateReport) writeLayers(w io.Writer) error {
	for i, layer := range r.Layers {
		if _, err := fmt.Fprintf(w, "round %d: %s\n", i+1, joinInts(layer)); err != nil {
			return err
		}
	}

	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func traceLayers(layers [][]int) [][]int {
	out := make([][]int, len(layers))
	for i, layer := range layers {
		out[i] = oneBased(layer)
	}

	return out
}

func newSimulateCmd(a *app) *cobra.Command {
	var (
		format string
		ids    []int
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [graph|-] --seeds 1,2,3",
		Short: "Run one LT cascade or a Monte Carlo IC estimate for given seeds",
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

			s := seeds.New(zeroBased(ids)...)
			rep := simulateReport{Model: opts.Model.String(), Seeds: oneBased(s.IDs())}
			if opts.Model == solver.LinearThreshold {
				res, err := diffusion.SimulateLT(g, opts.Threshold, s)
				if err != nil {
					return err
				}
				rep.Activated, rep.Rounds = res.Activated, res.Rounds
				if trace {
					rep.Layers = traceLayers(res.Layers)
				}
			} else {
				rng := diffusion.NewRand(a.seed())
				est, err := diffusion.MonteCarlo(g, opts.Probability, s, opts.MonteCarloRuns, rng)
				if err != nil {
					return err
				}
				rep.Runs, rep.Mean, rep.StdDev, rep.StdErr = est.Runs, est.Mean, est.StdDev, est.StdErr
				rep.Min, rep.Max = est.Min, est.Max
				if trace {
					res, err := diffusion.SimulateIC(g, opts.Probability, s, rng)
					if err != nil {
						return err
					}
					rep.Layers = traceLayers(res.Layers)
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case format == formatYAML:
				return writeYAML(out, rep)
			case opts.Model == solver.LinearThreshold:
				_, err = fmt.Fprintf(out, "activated %d of %d in %d rounds\n", rep.Activated, g.NumNodes(), rep.Rounds)
			default:
				_, err = fmt.Fprintf(out, "mean %.3f (sd %.3f, se %.3f, min %.0f, max %.0f) of %d over %d runs\n",
					rep.Mean, rep.StdDev, rep.StdErr, rep.Min, rep.Max, g.NumNodes(), rep.Runs)
			}
			if err != nil {
				return err
			}
			return rep.writeLayers(out)
		},
	}
	cmd.Flags().IntSliceVar(&ids, "seeds", nil, "1-based seed node ids")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&trace, "trace", false, "also report the nodes activated in each round")

	return cmd
}
