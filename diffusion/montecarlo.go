package diffusion

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/seeds"
)

// MonteCarlo estimates the expected Independent Cascade spread of s by
// averaging runs independent simulations drawn from rng.
//
// runs < 1 is rejected with ErrInvalidRuns; the estimate is never computed
// over an empty sample.
//
// Complexity: O(runs·(V + E)).
func MonteCarlo(g *graph.Graph, p float64, s *seeds.Set, runs int, rng *rand.Rand) (Estimate, error) {
	if runs < 1 {
		return Estimate{}, fmt.Errorf("MonteCarlo: runs=%d: %w", runs, ErrInvalidRuns)
	}

	samples := make([]float64, runs)
	for i := range samples {
		res, err := SimulateIC(g, p, s, rng)
		if err != nil {
			return Estimate{}, fmt.Errorf("MonteCarlo: run %d: %w", i, err)
		}
		samples[i] = float64(res.Activated)
	}

	est := Estimate{
		Runs: runs,
		Min:  floats.Min(samples),
		Max:  floats.Max(samples),
	}
	if runs == 1 {
		est.Mean = samples[0]
		return est, nil
	}
	est.Mean, est.StdDev = stat.MeanStdDev(samples, nil)
	est.StdErr = stat.StdErr(est.StdDev, float64(runs))

	return est, nil
}
