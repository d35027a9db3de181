// Package tsp — cost and shape utilities shared by all solvers.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision. Infinities pass
// through unchanged so "no tour" stays distinguishable.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// order validates the matrix shape and returns its dimension n.
// Only the shape is checked; entry values are the caller's contract.
//
// Complexity: O(n).
func order(dist [][]float64) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	n := len(dist)

	var i int
	for i = 0; i < n; i++ {
		if dist[i] == nil {
			return 0, ErrNilMatrix
		}
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// TourCost recomputes the total cost of a closed route by summing the cost
// of every consecutive edge. It is the reference used by tests to assert
// that a solver's reported cost matches its reported route.
//
// Contract: every index in route lies in [0..n); len(route) ≥ 1.
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist [][]float64, route []int) (float64, error) {
	n, err := order(dist)
	if err != nil {
		return 0, err
	}
	if len(route) == 0 {
		return 0, ErrInvalidRoute
	}

	var (
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i+1 < len(route); i++ {
		u, v = route[i], route[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidRoute
		}
		sum += dist[u][v]
	}

	return round1e9(sum), nil
}

// degenerate handles the n ≤ 2 fast paths shared by every strategy
// (§ solver contract): n ≤ 1 needs no travel, n == 2 has exactly one tour.
// The boolean reports whether the instance was handled.
func degenerate(dist [][]float64, n int) ([]int, float64, bool) {
	switch {
	case n <= 1:
		return []int{0}, 0, true
	case n == 2:
		return []int{0, 1, 0}, round1e9(dist[0][1] + dist[1][0]), true
	default:
		return nil, 0, false
	}
}
