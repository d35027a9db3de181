// Package tsp — greedy nearest-neighbor construction.
//
// NearestNeighbor is both a standalone baseline solver and the incumbent
// initializer inside BranchAndBound: its tour cost becomes the initial
// pruning threshold, so the tighter it is, the smaller the search tree.
package tsp

import (
	"math"
	"time"
)

// NearestNeighbor builds a tour by repeatedly travelling to the cheapest
// not-yet-visited node, starting from the depot. Deterministic: cost ties
// are broken toward the lowest node index (strict < comparison).
//
// Complexity: O(n²) time, O(n) space.
type NearestNeighbor struct{}

// Name implements Solver.
func (NearestNeighbor) Name() string { return "nearest-neighbor" }

// Solve implements Solver.
func (NearestNeighbor) Solve(dist [][]float64) (Result, error) {
	started := time.Now()

	n, err := order(dist)
	if err != nil {
		return Result{}, err
	}
	if route, cost, ok := degenerate(dist, n); ok {
		return Result{Route: route, Cost: cost, Elapsed: time.Since(started)}, nil
	}

	route, cost := greedyRoute(dist, n)
	if route == nil {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Route: route, Cost: round1e9(cost), Elapsed: time.Since(started)}, nil
}

// greedyRoute performs the single nearest-neighbor pass for n ≥ 3 and
// returns the closed route plus its raw (unrounded) cost. Returns a nil
// route when a step finds no finite edge (possible only with +Inf entries).
func greedyRoute(dist [][]float64, n int) ([]int, float64) {
	var (
		route   = make([]int, 1, n+1)
		visited = make([]bool, n)
		current = 0
		cost    float64
	)
	route[0] = 0
	visited[0] = true

	var (
		step int
		v    int
		best int
		bw   float64
	)
	for step = 1; step < n; step++ {
		best, bw = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !visited[v] && dist[current][v] < bw {
				best, bw = v, dist[current][v]
			}
		}
		if best < 0 {
			return nil, 0 // no finite edge out of current
		}
		visited[best] = true
		route = append(route, best)
		cost += bw
		current = best
	}

	// Close the tour at the depot.
	route = append(route, 0)
	cost += dist[current][0]
	if math.IsInf(cost, 0) {
		return nil, 0
	}

	return route, cost
}
