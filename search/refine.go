package search

import (
	"fmt"

	"github.com/katalvlaran/seedmin/seeds"
)

const methodRefine = "Refine"

// Refine removes seeds one at a time while opts.Criterion accepts the
// smaller set, and stops after a pass that accepts nothing.
//
// The result is never larger than s, stays feasible when s was, and is a
// fixed point of Refine for deterministic oracles. s itself is not modified.
//
// Complexity: O(passes · |s|) oracle calls.
func Refine(o Oracle, s *seeds.Set, opts RefineOptions) (RefineResult, error) {
	if o == nil {
		return RefineResult{}, fmt.Errorf("%s: %w", methodRefine, ErrNilOracle)
	}
	if err := checkSeeds(methodRefine, o, s); err != nil {
		return RefineResult{}, err
	}
	if err := validateOptimality(methodRefine, opts.Optimality); err != nil {
		return RefineResult{}, err
	}
	if opts.Policy != FirstImprovement && opts.Policy != BestImprovement {
		return RefineResult{}, fmt.Errorf("%s: policy %d: %w", methodRefine, int(opts.Policy), ErrUnknownPolicy)
	}
	if opts.Criterion != RetainCoverage && opts.Criterion != RetainExact {
		return RefineResult{}, fmt.Errorf("%s: criterion %d: %w", methodRefine, int(opts.Criterion), ErrUnknownCriterion)
	}

	goal := target(o, opts.Optimality)
	accept := func(trial, cur Outcome) bool {
		if opts.Criterion == RetainExact {
			return trial.Spread == cur.Spread
		}
		return trial.Spread >= cur.Spread && trial.Spread >= goal
	}

	res := RefineResult{Seeds: s.Clone()}
	var (
		cur    Outcome
		cached bool // cur already describes res.Seeds
		err    error
	)
	for {
		if !cached {
			if cur, err = o.Evaluate(res.Seeds); err != nil {
				return RefineResult{}, fmt.Errorf("%s: evaluate %v: %w", methodRefine, res.Seeds, err)
			}
			res.Evaluations++
		}
		res.Passes++

		var (
			next    *seeds.Set
			nextOut Outcome
		)
		for _, v := range res.Seeds.IDs() {
			trial := res.Seeds.Without(v)
			out, err := o.Evaluate(trial)
			if err != nil {
				return RefineResult{}, fmt.Errorf("%s: evaluate %v: %w", methodRefine, trial, err)
			}
			res.Evaluations++
			if !accept(out, cur) {
				continue
			}
			if next == nil || out.Spread > nextOut.Spread {
				next, nextOut = trial, out
			}
			if opts.Policy == FirstImprovement {
				break
			}
		}

		if next == nil {
			break
		}
		res.Seeds = next
		res.Removed++
		cur = nextOut
		cached = o.Deterministic()
	}

	res.Outcome = cur
	res.Feasible = cur.Spread >= goal

	return res, nil
}
