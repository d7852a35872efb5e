package solver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/search"
	"github.com/katalvlaran/seedmin/seeds"
)

// Solve runs greedy construction on g and then the phase opts.Strategy
// names. Every phase starts from the greedy set.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	logger := opts.Logger.With().Str("model", opts.Model.String()).Logger()
	rng := diffusion.NewRand(opts.Seed)
	oracle, err := newOracle(g, opts, rng)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	counter := search.Counting(oracle)

	res := Result{
		Model:      opts.Model.String(),
		Strategy:   opts.Strategy.String(),
		Nodes:      g.NumNodes(),
		Edges:      g.NumEdges(),
		Components: len(g.Components()),
		Target:     opts.Optimality * float64(g.NumNodes()),
	}
	logger.Info().
		Int("nodes", res.Nodes).
		Int("edges", res.Edges).
		Int("components", res.Components).
		Float64("target", res.Target).
		Str("strategy", res.Strategy).
		Msg("Starting seed search")

	start := time.Now()
	gr, err := search.Greedy(counter, search.GreedyOptions{
		Ranking:    opts.Ranking,
		SkipActive: opts.SkipActive,
		Optimality: opts.Optimality,
	})
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	res.addPhase(logger, phase(PhaseGreedy, gr.Seeds, gr.Outcome.Spread, gr.Feasible, counter, start))
	if !gr.Feasible {
		logger.Warn().Float64("spread", gr.Outcome.Spread).Msg("Greedy exhausted the ranking below target")
	}

	switch opts.Strategy {
	case LocalSearch:
		counter.Reset()
		start = time.Now()
		ref, err := search.Refine(counter, gr.Seeds, search.RefineOptions{
			Policy:     opts.Policy,
			Criterion:  opts.Criterion,
			Optimality: opts.Optimality,
		})
		if err != nil {
			return Result{}, fmt.Errorf("Solve: %w", err)
		}
		res.addPhase(logger, phase(PhaseLocalSearch, ref.Seeds, ref.Outcome.Spread, ref.Feasible, counter, start))

	case Annealing:
		counter.Reset()
		start = time.Now()
		ann, err := search.Anneal(counter, gr.Seeds, search.AnnealOptions{
			MaxIter:           opts.MaxIter,
			Temperature:       opts.Temperature,
			Cooling:           opts.Cooling,
			Move:              opts.Move,
			RemoveProbability: opts.RemoveProbability,
			Acceptance:        opts.Acceptance,
			RequireFeasible:   opts.RequireFeasible,
			Optimality:        opts.Optimality,
			HaltAtZero:        opts.HaltAtZero,
			Hook:              progressHook(logger, opts.ProgressEvery),
		}, rng)
		if err != nil {
			return Result{}, fmt.Errorf("Solve: %w", err)
		}
		feasible := ann.Outcome.Spread >= res.Target
		res.addPhase(logger, phase(PhaseAnnealing, ann.Seeds, ann.Outcome.Spread, feasible, counter, start))
		logger.Debug().
			Int("iterations", ann.Iterations).
			Int("accepted", ann.Accepted).
			Int("discarded", ann.Discarded).
			Float64("best_efficiency", ann.BestEfficiency).
			Float64("final_temperature", ann.FinalTemperature).
			Msg("Annealing finished")
	}

	return res, nil
}

func newOracle(g *graph.Graph, opts Options, rng *rand.Rand) (search.Oracle, error) {
	if opts.Model == LinearThreshold {
		return search.NewLTOracle(g, opts.Threshold)
	}

	return search.NewICOracle(g, opts.Probability, opts.MonteCarloRuns, rng)
}

func phase(name string, s *seeds.Set, spread float64, feasible bool, c *search.CountingOracle, start time.Time) Phase {
	return Phase{
		Name:        name,
		Seeds:       s.IDs(),
		Size:        s.Len(),
		Spread:      spread,
		Feasible:    feasible,
		Evaluations: c.Calls(),
		Elapsed:     time.Since(start),
	}
}

func (r *Result) addPhase(logger zerolog.Logger, p Phase) {
	r.Phases = append(r.Phases, p)
	r.Final = p
	logger.Info().
		Str("phase", p.Name).
		Int("size", p.Size).
		Float64("spread", p.Spread).
		Bool("feasible", p.Feasible).
		Int("evaluations", p.Evaluations).
		Dur("elapsed", p.Elapsed).
		Msg("Phase complete")
}

// progressHook logs every n-th annealing step at trace level.
func progressHook(logger zerolog.Logger, n int) func(search.Step) {
	if n == 0 || logger.GetLevel() > zerolog.TraceLevel || zerolog.GlobalLevel() > zerolog.TraceLevel {
		return nil
	}

	return func(s search.Step) {
		if s.Iteration%n != 0 {
			return
		}
		logger.Trace().
			Int("iteration", s.Iteration).
			Float64("temperature", s.Temperature).
			Int("size", s.Size).
			Float64("efficiency", s.Efficiency).
			Float64("best", s.BestEfficiency).
			Msg("Annealing progress")
	}
}
