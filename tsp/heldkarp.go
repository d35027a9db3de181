// Package tsp — Held–Karp exact dynamic programming.
//
// State: (mask, j) where mask is the bitmask of visited nodes (always
// containing node 0) and j ∈ mask\{0} is the endpoint of the partial path
// that starts at the depot. Only masks with bit 0 set are ever populated;
// the rest are unreachable by construction and skipped, not computed.
//
//	base:       cost({0,i}, i) = dist[0][i], pred 0
//	recurrence: cost(mask, j)  = min over k ∈ mask\{0,j} of
//	            cost(mask\{j}, k) + dist[k][j]
//	answer:     min over j≠0 of cost(full, j) + dist[j][0]
//
// The optimal route is recovered by walking predecessors from the
// minimizing j back to the depot.
package tsp

import (
	"math"
	"time"
)

// HeldKarp solves the TSP exactly via subset dynamic programming.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space. Intended for n ≲ 20; beyond
// that the tables outgrow memory and the caller accepts the consequences
// (correctness holds, practicality does not).
type HeldKarp struct{}

// Name implements Solver.
func (HeldKarp) Name() string { return "held-karp" }

// Solve implements Solver.
func (HeldKarp) Solve(dist [][]float64) (Result, error) {
	started := time.Now()

	n, err := order(dist)
	if err != nil {
		return Result{}, err
	}
	if route, cost, ok := degenerate(dist, n); ok {
		return Result{Route: route, Cost: cost, Elapsed: time.Since(started)}, nil
	}

	route, cost := heldKarp(dist, n)
	if route == nil {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Route: route, Cost: round1e9(cost), Elapsed: time.Since(started)}, nil
}

// heldKarp runs the DP for n ≥ 3. Tables are flat slices indexed by
// mask*n + j (the mask*node layout fits comfortably in memory for the
// target sizes). Returns a nil route when no Hamiltonian cycle exists.
func heldKarp(dist [][]float64, n int) ([]int, float64) {
	var (
		full = (1 << n) - 1
		size = (1 << n) * n
		cost = make([]float64, size)
		pred = make([]int, size)
	)
	for i := range cost {
		cost[i] = math.Inf(1)
		pred[i] = -1
	}

	// Base: the path consisting of the depot alone.
	cost[1*n+0] = 0

	// Fill masks in increasing numeric order; every predecessor mask
	// (mask without j) is numerically smaller, so it is already final.
	var (
		mask, prev int
		j, k       int
		w, cand    float64
	)
	for mask = 1; mask <= full; mask++ {
		if mask&1 == 0 {
			continue // depot not in subset: unreachable state
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				w = dist[k][j]
				if math.IsInf(w, 1) {
					continue // missing edge k→j
				}
				cand = cost[prev*n+k] + w
				if cand < cost[mask*n+j] {
					cost[mask*n+j] = cand
					pred[mask*n+j] = k
				}
			}
		}
	}

	// Close the tour: return edge j→0. Ties keep the first-seen endpoint.
	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 1; j < n; j++ {
		w = dist[j][0]
		if math.IsInf(w, 1) {
			continue
		}
		if total := cost[full*n+j] + w; total < best {
			best, last = total, j
		}
	}
	if last < 0 || math.IsInf(best, 1) {
		return nil, 0
	}

	// Backtrack predecessors from the minimizing endpoint to the depot.
	route := make([]int, n+1)
	route[n] = 0
	mask, j = full, last
	for i := n - 1; i >= 1; i-- {
		route[i] = j
		k = pred[mask*n+j]
		mask ^= 1 << j
		j = k
	}
	route[0] = 0

	return route, best
}
