package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seedmin/seeds"
)

const methodGreedy = "Greedy"

// Greedy walks a node ranking and inserts nodes until the spread reaches
// opts.Optimality × NumNodes or the ranking runs out.
//
// Ranking ties break by ascending node id. With SkipActive, a candidate
// that the last evaluation of the current set reported active is skipped;
// before the first insertion there is no such evaluation.
//
// An empty graph yields an empty, feasible set. A disconnected or otherwise
// unreachable target yields the full ranking with Feasible=false.
func Greedy(o Oracle, opts GreedyOptions) (GreedyResult, error) {
	if o == nil {
		return GreedyResult{}, fmt.Errorf("%s: %w", methodGreedy, ErrNilOracle)
	}
	if err := validateOptimality(methodGreedy, opts.Optimality); err != nil {
		return GreedyResult{}, err
	}

	res := GreedyResult{Seeds: seeds.New()}
	if o.Graph().NumNodes() == 0 {
		res.Feasible = true
		return res, nil
	}

	order, evals, err := rank(o, opts.Ranking)
	if err != nil {
		return GreedyResult{}, fmt.Errorf("%s: %w", methodGreedy, err)
	}
	res.Evaluations = evals

	goal := target(o, opts.Optimality)
	for _, v := range order {
		if res.Seeds.Contains(v) {
			continue
		}
		if opts.SkipActive && res.Outcome.Active != nil && res.Outcome.Active[v] {
			continue
		}
		res.Seeds.Add(v)
		res.Outcome, err = o.Evaluate(res.Seeds)
		if err != nil {
			return GreedyResult{}, fmt.Errorf("%s: evaluate %v: %w", methodGreedy, res.Seeds, err)
		}
		res.Evaluations++
		if res.Outcome.Spread >= goal {
			res.Feasible = true
			break
		}
	}

	return res, nil
}

// rank returns node ids best-first and the number of oracle calls spent.
func rank(o Oracle, r Ranking) ([]int, int, error) {
	g := o.Graph()
	n := g.NumNodes()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	score := make([]float64, n)
	evals := 0
	switch r {
	case Degree:
		for v := 0; v < n; v++ {
			score[v] = float64(g.Degree(v))
		}
	case MarginalGain:
		for v := 0; v < n; v++ {
			out, err := o.Evaluate(seeds.New(v))
			if err != nil {
				return nil, evals, fmt.Errorf("rank node %d: %w", v, err)
			}
			evals++
			score[v] = out.Spread
		}
	default:
		return nil, 0, fmt.Errorf("ranking %d: %w", int(r), ErrUnknownRanking)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return score[order[i]] > score[order[j]]
	})

	return order, evals, nil
}
