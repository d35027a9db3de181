package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/tsp"
)

func TestTourCost_SumsConsecutiveEdges(t *testing.T) {
	cost, err := tsp.TourCost(spec4x4, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 80.0, cost)

	// A single-node route has no edges.
	cost, err = tsp.TourCost(spec4x4, []int{0})
	require.NoError(t, err)
	require.Zero(t, cost)
}

func TestTourCost_Errors(t *testing.T) {
	_, err := tsp.TourCost(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	_, err = tsp.TourCost(spec4x4, nil)
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.TourCost(spec4x4, []int{0, 4, 0})
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)
}

func TestValidateRoute(t *testing.T) {
	require.NoError(t, tsp.ValidateRoute([]int{0}, 0))
	require.NoError(t, tsp.ValidateRoute([]int{0}, 1))
	require.NoError(t, tsp.ValidateRoute([]int{0, 1, 0}, 2))
	require.NoError(t, tsp.ValidateRoute([]int{0, 2, 1, 3, 0}, 4))

	// Wrong endpoint.
	require.ErrorIs(t, tsp.ValidateRoute([]int{1, 0, 2, 1}, 3), tsp.ErrInvalidRoute)
	// Wrong length.
	require.ErrorIs(t, tsp.ValidateRoute([]int{0, 1, 2, 0}, 4), tsp.ErrInvalidRoute)
	// Node revisited.
	require.ErrorIs(t, tsp.ValidateRoute([]int{0, 1, 1, 0}, 3), tsp.ErrInvalidRoute)
	// Node out of range.
	require.ErrorIs(t, tsp.ValidateRoute([]int{0, 1, 5, 0}, 3), tsp.ErrInvalidRoute)
	// Degenerate shape.
	require.ErrorIs(t, tsp.ValidateRoute([]int{0, 0}, 1), tsp.ErrInvalidRoute)
}
