// Package tsp_test — shared helpers for the solver test files.
//
// The helpers are deliberately independent from the package under test:
// bruteForce enumerates permutations directly, so exact solvers are checked
// against an implementation that shares no code with them.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/tsp"
)

// costTol is the relative agreement tolerance between solvers (spec'd 1e-9).
const costTol = 1e-9

// spec4x4 is the canonical 4-node instance: optimal tour cost 80 via
// [0 1 3 2 0] (or its reverse).
var spec4x4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// asym3 is the 3-node directed instance where naive symmetrization picks a
// tour inflated by the expensive 1→0 edge.
var asym3 = [][]float64{
	{0, 1, 1},
	{100, 0, 1},
	{1, 1, 0},
}

// randMatrix builds a deterministic n×n matrix of costs in [1, 100) with a
// zero diagonal. Symmetric or directed depending on the flag.
func randMatrix(t *testing.T, n int, seed int64, symmetric bool) [][]float64 {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if symmetric && j < i {
				dist[i][j] = dist[j][i]
				continue
			}
			dist[i][j] = 1 + 99*rng.Float64()
		}
	}

	return dist
}

// bruteForce returns the optimal closed-tour cost by exhaustive permutation
// of nodes 1..n-1. Usable for n ≲ 10.
func bruteForce(dist [][]float64) float64 {
	n := len(dist)
	if n <= 1 {
		return 0
	}
	if n == 2 {
		return dist[0][1] + dist[1][0]
	}

	perm := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		perm = append(perm, v)
	}

	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(perm) {
			cost := dist[0][perm[0]]
			for i := 0; i+1 < len(perm); i++ {
				cost += dist[perm[i]][perm[i+1]]
			}
			cost += dist[perm[len(perm)-1]][0]
			if cost < best {
				best = cost
			}

			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)

	return best
}

// requireValidResult asserts the shared solver guarantees: route invariants
// hold and the reported cost matches the recomputed edge sum.
func requireValidResult(t *testing.T, dist [][]float64, res tsp.Result) {
	t.Helper()

	n := len(dist)
	require.NoError(t, tsp.ValidateRoute(res.Route, n))

	recomputed, err := tsp.TourCost(dist, res.Route)
	require.NoError(t, err)
	require.InDelta(t, recomputed, res.Cost, costTol*(1+math.Abs(recomputed)))
}
