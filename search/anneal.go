package search

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/seedmin/seeds"
)

const methodAnneal = "Anneal"

// Anneal runs simulated annealing from s, maximizing efficiency, the spread
// per seed. The empty set has efficiency 0.
//
// Each iteration samples one move, evaluates the candidate and accepts it
// when it improves efficiency or with probability AcceptanceProbability.
// With RequireFeasible, candidates below the target are discarded without
// an acceptance test. The temperature is multiplied by Cooling after every
// iteration, whether or not a move happened.
//
// For stochastic oracles the current set is re-estimated before each
// acceptance test after the first iteration, so a lucky estimate cannot pin
// the walk. The best set seen is returned; s itself is not modified.
func Anneal(o Oracle, s *seeds.Set, opts AnnealOptions, rng *rand.Rand) (AnnealResult, error) {
	if o == nil {
		return AnnealResult{}, fmt.Errorf("%s: %w", methodAnneal, ErrNilOracle)
	}
	if rng == nil {
		return AnnealResult{}, fmt.Errorf("%s: %w", methodAnneal, ErrNeedRandSource)
	}
	if err := checkSeeds(methodAnneal, o, s); err != nil {
		return AnnealResult{}, err
	}
	if err := validateAnneal(opts); err != nil {
		return AnnealResult{}, err
	}

	n := o.Graph().NumNodes()
	goal := target(o, opts.Optimality)
	res := AnnealResult{}

	eval := func(set *seeds.Set) (Outcome, error) {
		out, err := o.Evaluate(set)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: evaluate %v: %w", methodAnneal, set, err)
		}
		res.Evaluations++
		return out, nil
	}

	cur := s.Clone()
	curOut, err := eval(cur)
	if err != nil {
		return AnnealResult{}, err
	}
	curEff := efficiency(curOut.Spread, cur.Len())

	best, bestOut, bestEff := cur.Clone(), curOut, curEff
	temp := opts.Temperature

	for it := 0; it < opts.MaxIter; it++ {
		if opts.HaltAtZero && temp <= 0 {
			break
		}
		step := Step{Iteration: it, Temperature: temp}

		cand, ok := propose(cur, n, opts, rng)
		if ok {
			step.Moved = true
			candOut, err := eval(cand)
			if err != nil {
				return AnnealResult{}, err
			}
			if opts.RequireFeasible && candOut.Spread < goal {
				step.Discarded = true
				res.Discarded++
			} else {
				if !o.Deterministic() && it > 0 {
					if curOut, err = eval(cur); err != nil {
						return AnnealResult{}, err
					}
					curEff = efficiency(curOut.Spread, cur.Len())
				}
				candEff := efficiency(candOut.Spread, cand.Len())
				delta := candEff - curEff
				if delta > 0 || rng.Float64() < AcceptanceProbability(opts.Acceptance, delta, temp) {
					cur, curOut, curEff = cand, candOut, candEff
					step.Accepted = true
					res.Accepted++
				}
				if curEff > bestEff {
					best, bestOut, bestEff = cur.Clone(), curOut, curEff
				}
			}
		}

		temp *= opts.Cooling
		res.Iterations++
		if opts.Hook != nil {
			step.Size = cur.Len()
			step.Efficiency = curEff
			step.BestEfficiency = bestEff
			opts.Hook(step)
		}
	}

	res.Seeds = best
	res.Outcome = bestOut
	res.BestEfficiency = bestEff
	res.FinalTemperature = temp

	return res, nil
}

// AcceptanceProbability returns the chance of accepting a move that changes
// efficiency by delta at temperature temp. temp <= 0 always yields 0.
func AcceptanceProbability(rule Acceptance, delta, temp float64) float64 {
	if temp <= 0 {
		return 0
	}
	switch rule {
	case InverseBoltzmann:
		return 1 / math.Exp(delta/temp)
	default:
		return math.Exp(delta / temp)
	}
}

func efficiency(spread float64, size int) float64 {
	if size == 0 {
		return 0
	}

	return spread / float64(size)
}

// propose samples a neighbor of cur. ok is false when the move has no
// valid target.
func propose(cur *seeds.Set, n int, opts AnnealOptions, rng *rand.Rand) (*seeds.Set, bool) {
	if n == 0 {
		return nil, false
	}
	if opts.Move == MoveToggle {
		v := rng.Intn(n)
		if cur.Contains(v) {
			return cur.Without(v), true
		}
		return cur.With(v), true
	}

	if rng.Float64() < opts.RemoveProbability && cur.Len() > 0 {
		return cur.Without(cur.At(rng.Intn(cur.Len()))), true
	}
	if cur.Len() >= n {
		return nil, false
	}
	outside := make([]int, 0, n-cur.Len())
	for v := 0; v < n; v++ {
		if !cur.Contains(v) {
			outside = append(outside, v)
		}
	}

	return cur.With(outside[rng.Intn(len(outside))]), true
}

func validateAnneal(opts AnnealOptions) error {
	switch {
	case opts.MaxIter < 0:
		return fmt.Errorf("%s: max iterations %d: %w", methodAnneal, opts.MaxIter, ErrInvalidSchedule)
	case opts.Temperature < 0 || math.IsNaN(opts.Temperature):
		return fmt.Errorf("%s: temperature %g: %w", methodAnneal, opts.Temperature, ErrInvalidSchedule)
	case !(opts.Cooling > 0 && opts.Cooling <= 1):
		return fmt.Errorf("%s: cooling %g: %w", methodAnneal, opts.Cooling, ErrInvalidSchedule)
	case opts.Move != MoveToggle && opts.Move != MoveBiasedRemoval:
		return fmt.Errorf("%s: move %d: %w", methodAnneal, int(opts.Move), ErrUnknownMove)
	case opts.Acceptance != Boltzmann && opts.Acceptance != InverseBoltzmann:
		return fmt.Errorf("%s: acceptance %d: %w", methodAnneal, int(opts.Acceptance), ErrUnknownAcceptance)
	case opts.Move == MoveBiasedRemoval && !(opts.RemoveProbability >= 0 && opts.RemoveProbability <= 1):
		return fmt.Errorf("%s: remove probability %g: %w", methodAnneal, opts.RemoveProbability, ErrInvalidSchedule)
	}
	if opts.RequireFeasible {
		return validateOptimality(methodAnneal, opts.Optimality)
	}

	return nil
}
