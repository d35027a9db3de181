package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/tsp"
)

func TestBranchAndBound_Spec4x4(t *testing.T) {
	var bb tsp.BranchAndBound
	res, err := bb.Solve(spec4x4)
	require.NoError(t, err)
	requireValidResult(t, spec4x4, res)
	require.Equal(t, 80.0, res.Cost)
}

func TestBranchAndBound_AsymmetricTriangle(t *testing.T) {
	var bb tsp.BranchAndBound
	res, err := bb.Solve(asym3)
	require.NoError(t, err)
	requireValidResult(t, asym3, res)
	require.Equal(t, 3.0, res.Cost)
	require.Equal(t, []int{0, 1, 2, 0}, res.Route)
}

func TestBranchAndBound_MatchesBruteForce(t *testing.T) {
	for n := 3; n <= 8; n++ {
		for seed := int64(1); seed <= 4; seed++ {
			for _, symmetric := range []bool{true, false} {
				dist := randMatrix(t, n, seed, symmetric)

				var bb tsp.BranchAndBound
				res, err := bb.Solve(dist)
				require.NoError(t, err)
				requireValidResult(t, dist, res)

				opt := bruteForce(dist)
				require.InDelta(t, opt, res.Cost, costTol*(1+opt),
					"n=%d seed=%d symmetric=%v", n, seed, symmetric)
			}
		}
	}
}

func TestBranchAndBound_NeverWorseThanSeed(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		dist := randMatrix(t, 10, seed, false)

		greedy, err := tsp.NearestNeighbor{}.Solve(dist)
		require.NoError(t, err)

		var bb tsp.BranchAndBound
		res, err := bb.Solve(dist)
		require.NoError(t, err)

		require.LessOrEqual(t, res.Cost, greedy.Cost+costTol*(1+greedy.Cost))
	}
}

func TestBranchAndBound_StatsPopulated(t *testing.T) {
	var bb tsp.BranchAndBound
	_, err := bb.Solve(randMatrix(t, 10, 3, true))
	require.NoError(t, err)

	stats := bb.Stats()
	require.Positive(t, stats.Explored)
	// Random dense instances always trip the bound somewhere.
	require.Positive(t, stats.Pruned)

	// Stats belong to the most recent solve: a trivial instance resets them.
	_, err = bb.Solve([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Zero(t, bb.Stats().Explored)
}

func TestBranchAndBound_Degenerate(t *testing.T) {
	var bb tsp.BranchAndBound

	res, err := bb.Solve([][]float64{})
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Route)
	require.Zero(t, res.Cost)

	res, err = bb.Solve([][]float64{{0}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Route)
	require.Zero(t, res.Cost)

	res, err = bb.Solve([][]float64{{0, 3}, {4, 0}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Route)
	require.Equal(t, 7.0, res.Cost)
}

func TestBranchAndBound_IncompleteGraph(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf, 1},
		{1, 0, inf, 1},
		{inf, inf, 0, inf},
		{1, 1, inf, 0},
	}
	var bb tsp.BranchAndBound
	_, err := bb.Solve(dist)
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)
}

func TestBranchAndBound_ShapeErrors(t *testing.T) {
	var bb tsp.BranchAndBound

	_, err := bb.Solve(nil)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	_, err = bb.Solve([][]float64{{0, 1, 2}, {1, 0, 2}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}
