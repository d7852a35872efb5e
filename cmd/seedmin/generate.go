package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedmin/builder"
	"github.com/katalvlaran/seedmin/dimacs"
	"github.com/katalvlaran/seedmin/graph"
)

type generateFlags struct {
	n, rows, cols int
	p             float64
	out           string
}

var generators = map[string]func(f generateFlags) builder.Constructor{
	"path":     func(f generateFlags) builder.Constructor { return builder.Path(f.n) },
	"star":     func(f generateFlags) builder.Constructor { return builder.Star(f.n) },
	"cycle":    func(f generateFlags) builder.Constructor { return builder.Cycle(f.n) },
	"wheel":    func(f generateFlags) builder.Constructor { return builder.Wheel(f.n) },
	"complete": func(f generateFlags) builder.Constructor { return builder.Complete(f.n) },
	"grid":     func(f generateFlags) builder.Constructor { return builder.Grid(f.rows, f.cols) },
	"random":   func(f generateFlags) builder.Constructor { return builder.RandomSparse(f.n, f.p) },
}

func generatorNames() string {
	names := make([]string, 0, len(generators))
	for k := range generators {
		names = append(names, k)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

// writeGraph writes g to path, or to stdout when path is empty.
func writeGraph(stdout io.Writer, path string, g *graph.Graph) error {
	if path == "" {
		return dimacs.Write(stdout, g)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = dimacs.Write(file, g); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("generate <%s>", generatorNames()),
		Short: "Write a synthetic graph in DIMACS format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q (want %s)", args[0], generatorNames())
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(a.seed())}, gen(f))
			if err != nil {
				return err
			}

			if err = writeGraph(cmd.OutOrStdout(), f.out, g); err != nil {
				return err
			}
			a.logger.Info().Str("topology", args[0]).Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Msg("Graph generated")

			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.n, "n", 10, "number of nodes")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.p, "p", 0.1, "edge probability for random graphs")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	return cmd
}
