package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/seedmin/search"
)

// Family defaults.
const (
	DefaultProbability    = 0.5
	DefaultThreshold      = 0.5
	DefaultMonteCarloRuns = 100
	DefaultOptimality     = 1.0
	DefaultICIterations   = 1000
	DefaultLTIterations   = 15000
	DefaultProgressEvery  = 100
)

// DefaultOptions returns the tuned settings for model. An unknown model
// gets the IC settings with Model left as given, so Solve rejects it.
//
// IC: marginal-gain ranking, first-improvement removal that must keep the
// target, annealing with toggle moves and no feasibility gate.
// LT: degree ranking that skips active nodes, best-improvement removal of
// redundant seeds only, annealing with biased removal that discards
// infeasible candidates and halts at zero temperature.
func DefaultOptions(model Model) Options {
	opts := Options{
		Model:          model,
		Strategy:       LocalSearch,
		Probability:    DefaultProbability,
		Threshold:      DefaultThreshold,
		MonteCarloRuns: DefaultMonteCarloRuns,
		Optimality:     DefaultOptimality,
		Ranking:        search.MarginalGain,
		Policy:         search.FirstImprovement,
		Criterion:      search.RetainCoverage,

		MaxIter:           DefaultICIterations,
		Temperature:       search.DefaultTemperature,
		Cooling:           search.DefaultCooling,
		Move:              search.MoveToggle,
		RemoveProbability: search.DefaultRemoveProbability,
		Acceptance:        search.Boltzmann,

		ProgressEvery: DefaultProgressEvery,
		Logger:        zerolog.Nop(),
	}
	if model == LinearThreshold {
		opts.Ranking = search.Degree
		opts.SkipActive = true
		opts.Policy = search.BestImprovement
		opts.Criterion = search.RetainExact
		opts.MaxIter = DefaultLTIterations
		opts.Move = search.MoveBiasedRemoval
		opts.RequireFeasible = true
		opts.HaltAtZero = true
	}

	return opts
}

// validateOptions rejects out-of-range settings before any simulation runs.
func validateOptions(opts Options) error {
	const method = "Solve"
	switch opts.Model {
	case IndependentCascade:
		if !(opts.Probability >= 0 && opts.Probability <= 1) {
			return fmt.Errorf("%s: probability %g not in [0,1]: %w", method, opts.Probability, ErrInvalidOptions)
		}
		if opts.MonteCarloRuns < 1 {
			return fmt.Errorf("%s: monte carlo runs %d < 1: %w", method, opts.MonteCarloRuns, ErrInvalidOptions)
		}
	case LinearThreshold:
		if !(opts.Threshold >= 0 && opts.Threshold <= 1) {
			return fmt.Errorf("%s: threshold %g not in [0,1]: %w", method, opts.Threshold, ErrInvalidOptions)
		}
	default:
		return fmt.Errorf("%s: model %d: %w", method, int(opts.Model), ErrUnknownModel)
	}

	if !(opts.Optimality > 0 && opts.Optimality <= 1) {
		return fmt.Errorf("%s: optimality %g not in (0,1]: %w", method, opts.Optimality, ErrInvalidOptions)
	}
	if opts.Ranking != search.MarginalGain && opts.Ranking != search.Degree {
		return fmt.Errorf("%s: ranking %d: %w", method, int(opts.Ranking), search.ErrUnknownRanking)
	}
	if opts.ProgressEvery < 0 {
		return fmt.Errorf("%s: progress interval %d < 0: %w", method, opts.ProgressEvery, ErrInvalidOptions)
	}

	switch opts.Strategy {
	case GreedyOnly:
	case LocalSearch:
		if opts.Policy != search.FirstImprovement && opts.Policy != search.BestImprovement {
			return fmt.Errorf("%s: policy %d: %w", method, int(opts.Policy), search.ErrUnknownPolicy)
		}
		if opts.Criterion != search.RetainCoverage && opts.Criterion != search.RetainExact {
			return fmt.Errorf("%s: criterion %d: %w", method, int(opts.Criterion), search.ErrUnknownCriterion)
		}
	case Annealing:
		switch {
		case opts.MaxIter < 0:
			return fmt.Errorf("%s: max iterations %d < 0: %w", method, opts.MaxIter, ErrInvalidOptions)
		case !(opts.Temperature >= 0):
			return fmt.Errorf("%s: temperature %g < 0: %w", method, opts.Temperature, ErrInvalidOptions)
		case !(opts.Cooling > 0 && opts.Cooling <= 1):
			return fmt.Errorf("%s: cooling %g not in (0,1]: %w", method, opts.Cooling, ErrInvalidOptions)
		case !(opts.RemoveProbability >= 0 && opts.RemoveProbability <= 1):
			return fmt.Errorf("%s: remove probability %g not in [0,1]: %w", method, opts.RemoveProbability, ErrInvalidOptions)
		case opts.Move != search.MoveToggle && opts.Move != search.MoveBiasedRemoval:
			return fmt.Errorf("%s: move %d: %w", method, int(opts.Move), search.ErrUnknownMove)
		case opts.Acceptance != search.Boltzmann && opts.Acceptance != search.InverseBoltzmann:
			return fmt.Errorf("%s: acceptance %d: %w", method, int(opts.Acceptance), search.ErrUnknownAcceptance)
		}
	default:
		return fmt.Errorf("%s: strategy %d: %w", method, int(opts.Strategy), ErrUnknownStrategy)
	}

	return nil
}
