package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedmin/builder"
	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/search"
	"github.com/katalvlaran/seedmin/seeds"
)

func ltAnneal(maxIter int, temp float64) search.AnnealOptions {
	return search.AnnealOptions{
		MaxIter:           maxIter,
		Temperature:       temp,
		Cooling:           search.DefaultCooling,
		Move:              search.MoveBiasedRemoval,
		RemoveProbability: search.DefaultRemoveProbability,
		Acceptance:        search.Boltzmann,
		RequireFeasible:   true,
		Optimality:        1,
		HaltAtZero:        true,
	}
}

func TestAcceptanceProbability(t *testing.T) {
	assert.Zero(t, search.AcceptanceProbability(search.Boltzmann, -1, 0))
	assert.Zero(t, search.AcceptanceProbability(search.InverseBoltzmann, -1, -3))
	assert.InDelta(t, math.Exp(-1), search.AcceptanceProbability(search.Boltzmann, -1, 1), 1e-12)
	assert.InDelta(t, math.E, search.AcceptanceProbability(search.InverseBoltzmann, -1, 1), 1e-12)
	assert.InDelta(t, 1.0, search.AcceptanceProbability(search.Boltzmann, 0, 10), 1e-12)
	assert.Less(t, search.AcceptanceProbability(search.Boltzmann, -2, 1),
		search.AcceptanceProbability(search.Boltzmann, -1, 1))
}

// TestAnneal_DescentReachesOptimum: on K4 with r=0.5 any two seeds cover
// the graph and a single one does not, so pure descent ends at size 2.
func TestAnneal_DescentReachesOptimum(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Complete(4)), 0.5)
	opts := ltAnneal(200, 0)
	opts.HaltAtZero = false
	opts.Cooling = 1

	res, err := search.Anneal(o, seeds.New(0, 1, 2, 3), opts, diffusion.NewRand(testSeed))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Seeds.Len())
	assert.InDelta(t, 2.0, res.BestEfficiency, 1e-12)
	assert.Equal(t, 4.0, res.Outcome.Spread)
	assert.Equal(t, 200, res.Iterations)
	assert.Positive(t, res.Discarded)
}

func TestAnneal_BestNeverWorseThanStart(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(30, 0.15))
	o := mustLT(t, g, 0.4)
	gr, err := search.Greedy(o, search.GreedyOptions{Ranking: search.Degree, SkipActive: true, Optimality: 1})
	require.NoError(t, err)
	startEff := gr.Outcome.Spread / float64(gr.Seeds.Len())

	res, err := search.Anneal(o, gr.Seeds, ltAnneal(500, 100), diffusion.NewRand(testSeed))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.BestEfficiency, startEff)
	assert.Equal(t, 30.0, res.Outcome.Spread, "feasibility gate keeps full coverage")
	assert.InDelta(t, res.Outcome.Spread/float64(res.Seeds.Len()), res.BestEfficiency, 1e-12)
}

func TestAnneal_HookAndCooling(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Star(5)), 0.5)
	opts := ltAnneal(50, 10)
	var steps []search.Step
	opts.Hook = func(s search.Step) { steps = append(steps, s) }

	res, err := search.Anneal(o, seeds.New(1, 2, 3), opts, diffusion.NewRand(testSeed))
	require.NoError(t, err)
	require.Len(t, steps, 50)
	assert.Equal(t, 50, res.Iterations)
	assert.InDelta(t, 10*math.Pow(0.99, 50), res.FinalTemperature, 1e-9)
	assert.InDelta(t, 10.0, steps[0].Temperature, 1e-12)
	for i, s := range steps {
		assert.Equal(t, i, s.Iteration)
		assert.GreaterOrEqual(t, s.BestEfficiency, s.Efficiency)
	}
	assert.Equal(t, res.Accepted+res.Discarded, countIf(steps, func(s search.Step) bool { return s.Accepted || s.Discarded }))
}

func countIf(steps []search.Step, pred func(search.Step) bool) int {
	n := 0
	for _, s := range steps {
		if pred(s) {
			n++
		}
	}
	return n
}

func TestAnneal_HaltAtZeroTemperature(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Path(4)), 0.5)

	res, err := search.Anneal(o, seeds.New(0, 3), ltAnneal(100, 0), diffusion.NewRand(testSeed))
	require.NoError(t, err)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, []int{0, 3}, res.Seeds.IDs())
	assert.Equal(t, 1, res.Evaluations)
}

func TestAnneal_EmptyGraphOnlyCools(t *testing.T) {
	o := mustLT(t, mustBuild(t), 0.5)
	opts := ltAnneal(10, 1)
	opts.Move = search.MoveToggle

	res, err := search.Anneal(o, seeds.New(), opts, diffusion.NewRand(testSeed))
	require.NoError(t, err)
	assert.Equal(t, 10, res.Iterations)
	assert.Zero(t, res.BestEfficiency)
	assert.Equal(t, 1, res.Evaluations)
}

func TestAnneal_ICToggle(t *testing.T) {
	g := mustBuild(t, builder.Star(6))
	o, err := search.NewICOracle(g, 1, 5, diffusion.NewRand(testSeed))
	require.NoError(t, err)

	res, err := search.Anneal(o, seeds.New(0, 1, 2), search.AnnealOptions{
		MaxIter:     300,
		Temperature: search.DefaultTemperature,
		Cooling:     search.DefaultCooling,
		Move:        search.MoveToggle,
		Acceptance:  search.Boltzmann,
	}, diffusion.NewRand(testSeed))
	require.NoError(t, err)
	// with p=1 any single node floods the star: efficiency 6
	assert.InDelta(t, 6.0, res.BestEfficiency, 1e-12)
	assert.Equal(t, 1, res.Seeds.Len())
	// stochastic oracles re-estimate the current set after iteration 0
	assert.Greater(t, res.Evaluations, res.Iterations+1)
}

func TestAnneal_SameSeedSameResult(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(25, 0.2))
	o := mustLT(t, g, 0.5)
	start := seeds.New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24)

	a, err := search.Anneal(o, start, ltAnneal(300, 100), diffusion.NewRand(5))
	require.NoError(t, err)
	b, err := search.Anneal(o, start, ltAnneal(300, 100), diffusion.NewRand(5))
	require.NoError(t, err)
	assert.True(t, a.Seeds.Equal(b.Seeds))
	assert.Equal(t, a.Accepted, b.Accepted)
	assert.Equal(t, 25, start.Len())
}

func TestAnneal_Errors(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Path(3)), 0.5)
	rng := diffusion.NewRand(testSeed)
	s := seeds.New(0)

	_, err := search.Anneal(nil, s, ltAnneal(1, 1), rng)
	assert.ErrorIs(t, err, search.ErrNilOracle)
	_, err = search.Anneal(o, s, ltAnneal(1, 1), nil)
	assert.ErrorIs(t, err, search.ErrNeedRandSource)
	_, err = search.Anneal(o, nil, ltAnneal(1, 1), rng)
	assert.ErrorIs(t, err, search.ErrNilSeeds)

	bad := ltAnneal(1, 1)
	bad.Cooling = 0
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrInvalidSchedule)

	bad = ltAnneal(-1, 1)
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrInvalidSchedule)

	bad = ltAnneal(1, 1)
	bad.RemoveProbability = 1.5
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrInvalidSchedule)

	bad = ltAnneal(1, 1)
	bad.Move = search.Move(7)
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrUnknownMove)

	bad = ltAnneal(1, 1)
	bad.Acceptance = search.Acceptance(7)
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrUnknownAcceptance)

	bad = ltAnneal(1, 1)
	bad.Optimality = 0
	_, err = search.Anneal(o, s, bad, rng)
	assert.ErrorIs(t, err, search.ErrInvalidOptimality)
}
