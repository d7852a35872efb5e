package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seedmin/solver"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	if format != formatText && format != formatYAML {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
	}

	return nil
}

// phaseReport is a solver.Phase with 1-based node ids and seconds.
type phaseReport struct {
	Name        string  `yaml:"name"`
	Size        int     `yaml:"size"`
	Seeds       []int   `yaml:"seeds"`
	Spread      float64 `yaml:"spread"`
	Feasible    bool    `yaml:"feasible"`
	Evaluations int     `yaml:"evaluations"`
	Seconds     float64 `yaml:"seconds"`
}

type solveReport struct {
	Model      string        `yaml:"model"`
	Strategy   string        `yaml:"strategy"`
	Seed       int64         `yaml:"seed"`
	Nodes      int           `yaml:"nodes"`
	Edges      int           `yaml:"edges"`
	Components int           `yaml:"components"`
	Target     float64       `yaml:"target"`
	Phases     []phaseReport `yaml:"phases"`
}

func newSolveReport(res solver.Result, seed int64) solveReport {
	rep := solveReport{
		Model:      res.Model,
		Strategy:   res.Strategy,
		Seed:       seed,
		Nodes:      res.Nodes,
		Edges:      res.Edges,
		Components: res.Components,
		Target:     res.Target,
	}
	for _, p := range res.Phases {
		rep.Phases = append(rep.Phases, phaseReport{
			Name:        p.Name,
			Size:        p.Size,
			Seeds:       oneBased(p.Seeds),
			Spread:      p.Spread,
			Feasible:    p.Feasible,
			Evaluations: p.Evaluations,
			Seconds:     p.Elapsed.Seconds(),
		})
	}

	return rep
}

func (r solveReport) writeText(w io.Writer) error {
	for _, p := range r.Phases {
		state := "feasible"
		if !p.Feasible {
			state = "below target"
		}
		if _, err := fmt.Fprintf(w, "Seed nodes selected by %s: %d in %.3f s (spread %.1f/%d, %s)\nseeds: %v\n",
			p.Name, p.Size, p.Seconds, p.Spread, r.Nodes, state, p.Seeds); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func oneBased(ids []int) []int {
	out := make([]int, len(ids))
	for i, v := range ids {
		out[i] = v + 1
	}

	return out
}

func zeroBased(ids []int) []int {
	out := make([]int, len(ids))
	for i, v := range ids {
		out[i] = v - 1
	}

	return out
}
