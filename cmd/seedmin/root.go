package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedmin/dimacs"
	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/internal/config"
	"github.com/katalvlaran/seedmin/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg        *config.Config
	configPath string
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "seedmin",
		Short: "Find small influence seed sets under IC and LT diffusion",
		Long: `seedmin builds a seed set with a greedy heuristic and improves it by
local search or simulated annealing until its diffusion covers the target
fraction of the graph. Graphs are read in DIMACS edge format.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pf.String("model", "lt", "diffusion model: ic or lt")
	pf.String("strategy", "local-search", "search strategy: greedy, local-search or annealing")

	for key, flag := range map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeySeed:     "seed",
		config.KeyModel:    "model",
		config.KeyStrategy: "strategy",
	} {
		if err := a.cfg.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("seedmin: bind --%s: %v", flag, err))
		}
	}

	root.AddCommand(newSolveCmd(a), newSimulateCmd(a), newGenerateCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		if err := a.cfg.LoadFromFile(a.configPath); err != nil {
			return err
		}
	}
	a.logger = logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel())

	return nil
}

// seed returns the configured seed, drawing one from the clock when it is 0.
func (a *app) seed() int64 {
	if s := a.cfg.Seed(); s != 0 {
		return s
	}
	s := time.Now().UnixNano()
	a.logger.Debug().Int64("seed", s).Msg("Using clock seed")

	return s
}

// readGraph loads a DIMACS graph from path, or from stdin for "-".
func (a *app) readGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	var (
		g   *graph.Graph
		err error
	)
	if path == "-" {
		g, err = dimacs.Read(cmd.InOrStdin())
	} else {
		g, err = dimacs.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Info().Str("source", path).Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Msg("Graph loaded")

	return g, nil
}

// graphArg returns the single positional graph argument, defaulting to stdin.
func graphArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}

	return args[0]
}
