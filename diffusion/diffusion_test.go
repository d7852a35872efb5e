package diffusion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedmin/builder"
	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/seeds"
)

const testSeed int64 = 7

// mustBuild is a small fixture helper around builder.BuildGraph.
func mustBuild(t *testing.T, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(testSeed)}, cons...)
	require.NoError(t, err)

	return g
}

func TestSimulateIC_Errors(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	rng := diffusion.NewRand(testSeed)

	_, err := diffusion.SimulateIC(nil, 0.5, seeds.New(0), rng)
	assert.ErrorIs(t, err, diffusion.ErrGraphNil)
	_, err = diffusion.SimulateIC(g, 1.5, seeds.New(0), rng)
	assert.ErrorIs(t, err, diffusion.ErrInvalidProbability)
	_, err = diffusion.SimulateIC(g, -0.1, seeds.New(0), rng)
	assert.ErrorIs(t, err, diffusion.ErrInvalidProbability)
	_, err = diffusion.SimulateIC(g, math.NaN(), seeds.New(0), rng)
	assert.ErrorIs(t, err, diffusion.ErrInvalidProbability)
	_, err = diffusion.SimulateIC(g, 0.5, seeds.New(0), nil)
	assert.ErrorIs(t, err, diffusion.ErrNeedRandSource)
	_, err = diffusion.SimulateIC(g, 0.5, seeds.New(3), rng)
	assert.ErrorIs(t, err, diffusion.ErrSeedOutOfRange)
}

// TestSimulateIC_StarCertainEdges: with p=1 the cascade is deterministic
// regardless of the draws.
func TestSimulateIC_StarCertainEdges(t *testing.T) {
	g := mustBuild(t, builder.Star(5))
	rng := diffusion.NewRand(testSeed)

	for i := 0; i < 50; i++ {
		res, err := diffusion.SimulateIC(g, 1.0, seeds.New(0), rng)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Activated)
		assert.Equal(t, 1, res.Rounds)
		assert.Equal(t, [][]int{{1, 2, 3, 4}}, res.Layers)
	}
}

// TestSimulateIC_LayersPartitionSpread: the layers plus the seeds are
// exactly the active nodes, each listed once.
func TestSimulateIC_LayersPartitionSpread(t *testing.T) {
	g := mustBuild(t, builder.Grid(5, 5))
	rng := diffusion.NewRand(testSeed)
	s := seeds.New(12)

	for i := 0; i < 30; i++ {
		res, err := diffusion.SimulateIC(g, 0.4, s, rng)
		require.NoError(t, err)
		require.Len(t, res.Layers, res.Rounds)

		seen := map[int]bool{12: true}
		for _, layer := range res.Layers {
			assert.NotEmpty(t, layer)
			for _, v := range layer {
				assert.False(t, seen[v], "node %d listed twice", v)
				assert.True(t, res.Active[v])
				seen[v] = true
			}
		}
		assert.Len(t, seen, res.Activated)
	}
}

func TestSimulateIC_ZeroProbabilityKeepsSeeds(t *testing.T) {
	g := mustBuild(t, builder.Complete(6))
	rng := diffusion.NewRand(testSeed)

	res, err := diffusion.SimulateIC(g, 0, seeds.New(1, 4), rng)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Activated)
	assert.Zero(t, res.Rounds)
	assert.True(t, res.Active[1])
	assert.True(t, res.Active[4])
	assert.False(t, res.Active[0])
}

func TestSimulateIC_EmptyAndNilSeeds(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))
	rng := diffusion.NewRand(testSeed)

	res, err := diffusion.SimulateIC(g, 1, seeds.New(), rng)
	require.NoError(t, err)
	assert.Zero(t, res.Activated)

	res, err = diffusion.SimulateIC(g, 1, nil, rng)
	require.NoError(t, err)
	assert.Zero(t, res.Activated)
}

func TestSimulateIC_ActivatedAtLeastSeeds(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(40, 0.08))
	rng := diffusion.NewRand(testSeed)
	s := seeds.New(0, 5, 9, 13, 21)

	for i := 0; i < 100; i++ {
		res, err := diffusion.SimulateIC(g, 0.3, s, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Activated, s.Len())
		count := 0
		for _, a := range res.Active {
			if a {
				count++
			}
		}
		assert.Equal(t, res.Activated, count)
	}
}

func TestSimulateIC_SameSeedSameRun(t *testing.T) {
	g := mustBuild(t, builder.Grid(6, 6))
	s := seeds.New(0)

	a, err := diffusion.SimulateIC(g, 0.5, s, diffusion.NewRand(99))
	require.NoError(t, err)
	b, err := diffusion.SimulateIC(g, 0.5, s, diffusion.NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestMonteCarlo_MonotoneInProbability checks the expected spread grows
// with p, using large batches so the gap dwarfs the sampling noise.
func TestMonteCarlo_MonotoneInProbability(t *testing.T) {
	g := mustBuild(t, builder.Grid(8, 8))
	rng := diffusion.NewRand(testSeed)
	s := seeds.New(0, 63)

	var prev float64
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		est, err := diffusion.MonteCarlo(g, p, s, 400, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, est.Mean+2*est.StdErr, prev, "p=%.1f", p)
		prev = est.Mean
	}
	assert.Greater(t, prev, 50.0, "p=0.9 should flood most of an 8x8 grid")
}

func TestMonteCarlo_Validation(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	rng := diffusion.NewRand(testSeed)

	_, err := diffusion.MonteCarlo(g, 0.5, seeds.New(0), 0, rng)
	assert.ErrorIs(t, err, diffusion.ErrInvalidRuns)
	_, err = diffusion.MonteCarlo(g, 0.5, seeds.New(0), 3, nil)
	assert.ErrorIs(t, err, diffusion.ErrNeedRandSource)
}

func TestMonteCarlo_Statistics(t *testing.T) {
	g := mustBuild(t, builder.Star(5))
	rng := diffusion.NewRand(testSeed)

	est, err := diffusion.MonteCarlo(g, 1, seeds.New(0), 10, rng)
	require.NoError(t, err)
	assert.Equal(t, 10, est.Runs)
	assert.InDelta(t, 5.0, est.Mean, 1e-12)
	assert.InDelta(t, 0.0, est.StdDev, 1e-12)
	assert.Equal(t, 5.0, est.Min)
	assert.Equal(t, 5.0, est.Max)

	one, err := diffusion.MonteCarlo(g, 0.5, seeds.New(0), 1, rng)
	require.NoError(t, err)
	assert.Zero(t, one.StdDev)
	assert.Equal(t, one.Min, one.Mean)
}

func TestSimulateLT_Errors(t *testing.T) {
	g := mustBuild(t, builder.Path(3))

	_, err := diffusion.SimulateLT(nil, 0.5, seeds.New(0))
	assert.ErrorIs(t, err, diffusion.ErrGraphNil)
	_, err = diffusion.SimulateLT(g, 1.01, seeds.New(0))
	assert.ErrorIs(t, err, diffusion.ErrInvalidThreshold)
	_, err = diffusion.SimulateLT(g, math.NaN(), seeds.New(0))
	assert.ErrorIs(t, err, diffusion.ErrInvalidThreshold)
	_, err = diffusion.SimulateLT(g, 0.5, seeds.New(-1))
	assert.ErrorIs(t, err, diffusion.ErrSeedOutOfRange)
}

// TestSimulateLT_PathScenario: 0-1-2-3-4 with r=0.5 from {0} activates one
// node per round.
func TestSimulateLT_PathScenario(t *testing.T) {
	g := mustBuild(t, builder.Path(5))

	res, err := diffusion.SimulateLT(g, 0.5, seeds.New(0))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Activated)
	assert.Equal(t, 4, res.Rounds)
	assert.Equal(t, [][]int{{1}, {2}, {3}, {4}}, res.Layers)
	assert.Equal(t, []bool{true, true, true, true, true}, res.Active)
}

func TestSimulateLT_ThresholdBlocks(t *testing.T) {
	g := mustBuild(t, builder.Path(5))

	// node 1 sees 1 of 1 active, node 2 only 1 of 2 < 0.6
	res, err := diffusion.SimulateLT(g, 0.6, seeds.New(0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Activated)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, []bool{true, true, false, false, false}, res.Active)
}

// TestSimulateLT_Synchronous verifies a round reads the previous round's
// state only: on a triangle with r=1, seed {0} cannot activate 1 or 2
// because each still has one inactive neighbor.
func TestSimulateLT_Synchronous(t *testing.T) {
	g := mustBuild(t, builder.Complete(3))

	res, err := diffusion.SimulateLT(g, 1.0, seeds.New(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Activated)
	assert.Empty(t, res.Layers)
}

func TestSimulateLT_IsolatedNodesStayInactive(t *testing.T) {
	g := mustBuild(t, builder.Path(3), builder.Isolated(2))

	res, err := diffusion.SimulateLT(g, 0, seeds.New(0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Activated)

	res, err = diffusion.SimulateLT(g, 0.5, seeds.New(0, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Activated)
}

func TestSimulateLT_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(60, 0.07))
	s := seeds.New(3, 17, 42)

	first, err := diffusion.SimulateLT(g, 0.3, s)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := diffusion.SimulateLT(g, 0.3, s)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSimulateLT_MonotoneInSeeds grows a seed set one node at a time and
// checks the spread never shrinks.
func TestSimulateLT_MonotoneInSeeds(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(50, 0.1))
	s := seeds.New()

	prev := 0
	for v := 0; v < g.NumNodes(); v += 3 {
		s.Add(v)
		res, err := diffusion.SimulateLT(g, 0.4, s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Activated, prev)
		assert.GreaterOrEqual(t, res.Activated, s.Len())
		prev = res.Activated
	}
}

func TestSimulateLT_ResultsDoNotShareState(t *testing.T) {
	g := mustBuild(t, builder.Path(4))

	a, err := diffusion.SimulateLT(g, 0.5, seeds.New(0))
	require.NoError(t, err)
	b, err := diffusion.SimulateLT(g, 0.9, seeds.New(3))
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, true}, a.Active)
	assert.Equal(t, []bool{false, false, false, true}, b.Active)
	assert.Equal(t, 1, b.Activated)
}
