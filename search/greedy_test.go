package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedmin/builder"
	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/search"
)

func TestGreedy_DegreePicksHubFirst(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Star(5)), 0.5)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.Degree, SkipActive: true, Optimality: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Seeds.IDs())
	assert.True(t, res.Feasible)
	assert.Equal(t, 5.0, res.Outcome.Spread)
	assert.Equal(t, 1, res.Evaluations)
}

func TestGreedy_MarginalGainRanking(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Star(5)), 0.5)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.MarginalGain, Optimality: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Seeds.IDs())
	// five singleton evaluations plus one evaluation of {0}
	assert.Equal(t, 6, res.Evaluations)
}

func TestGreedy_TiesBreakByAscendingID(t *testing.T) {
	// every node of a cycle has degree 2; with r=1 each seed covers itself only
	o := mustLT(t, mustBuild(t, builder.Cycle(6)), 1)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.Degree, Optimality: 0.5})
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 1, 2}, res.Seeds.IDs())
}

func TestGreedy_SkipActiveOnDisconnectedGraph(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Path(3), builder.Isolated(2)), 0.5)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.Degree, SkipActive: true, Optimality: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, res.Seeds.IDs())
	assert.True(t, res.Feasible)
	assert.Equal(t, 5.0, res.Outcome.Spread)
}

func TestGreedy_WithoutSkipTakesWholeRanking(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Path(3), builder.Isolated(2)), 0.5)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.Degree, Optimality: 1})
	require.NoError(t, err)
	// the path nodes all go in before the isolated ones are reached
	assert.Equal(t, []int{1, 0, 2, 3, 4}, res.Seeds.IDs())
	assert.True(t, res.Feasible)
}

func TestGreedy_EmptyGraph(t *testing.T) {
	o := mustLT(t, mustBuild(t), 0.5)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.MarginalGain, Optimality: 1})
	require.NoError(t, err)
	assert.Zero(t, res.Seeds.Len())
	assert.True(t, res.Feasible)
}

func TestGreedy_IC(t *testing.T) {
	g := mustBuild(t, builder.Star(6))
	o, err := search.NewICOracle(g, 1, 5, diffusion.NewRand(testSeed))
	require.NoError(t, err)

	res, err := search.Greedy(o, search.GreedyOptions{Ranking: search.MarginalGain, Optimality: 1})
	require.NoError(t, err)
	// with p=1 every singleton floods the star, so the lowest id wins
	assert.Equal(t, []int{0}, res.Seeds.IDs())
	assert.True(t, res.Feasible)
}

func TestGreedy_Errors(t *testing.T) {
	o := mustLT(t, mustBuild(t, builder.Path(3)), 0.5)

	_, err := search.Greedy(nil, search.GreedyOptions{Optimality: 1})
	assert.ErrorIs(t, err, search.ErrNilOracle)
	_, err = search.Greedy(o, search.GreedyOptions{Optimality: 0})
	assert.ErrorIs(t, err, search.ErrInvalidOptimality)
	_, err = search.Greedy(o, search.GreedyOptions{Optimality: 1.5})
	assert.ErrorIs(t, err, search.ErrInvalidOptimality)
	_, err = search.Greedy(o, search.GreedyOptions{Ranking: search.Ranking(9), Optimality: 1})
	assert.ErrorIs(t, err, search.ErrUnknownRanking)
}
