// Package tsp — Branch and Bound exact search.
//
// The search enumerates partial routes depth-first from the depot. At every
// non-terminal node it computes an admissible lower bound on the cheapest
// possible completion and prunes the subtree whenever that bound already
// reaches the incumbent (the best complete tour found so far). The
// incumbent starts from the nearest-neighbor tour, so a finite pruning
// threshold exists before the first branching decision.
//
// Lower bound for a partial state (visited, last, costSoFar), with
// U = all nodes \ visited:
//
//	U empty:   costSoFar + dist[last][0]                      (exact)
//	U == {u}:  costSoFar + dist[last][u] + dist[u][0]         (exact)
//	else:      costSoFar
//	           + MST(U) over min(dist[u][v], dist[v][u]) edges
//	           + min over v∈U of dist[last][v]
//	           + min over v∈U of dist[v][0]
//
// The three summands bound disjoint parts of any completion: entering U,
// covering U (a Hamiltonian path through U costs at least its spanning
// tree), and returning to the depot. Only the MST term symmetrizes costs;
// the two minimum-edge terms are taken in the direction the tour actually
// travels, and must stay directed to remain admissible.
//
// Children are expanded in ascending edge-cost order from the current node
// (lowest index on ties), which tightens the incumbent early; correctness
// does not depend on the ordering.
package tsp

import (
	"math"
	"sort"
	"time"
)

// Stats carries per-solve search diagnostics. Observability only: the
// counters never influence the returned route or cost.
type Stats struct {
	// Explored counts search-tree nodes entered (terminal ones included).
	Explored int64

	// Pruned counts subtrees discarded because the lower bound reached
	// the incumbent.
	Pruned int64
}

// BranchAndBound solves the TSP exactly via depth-first search with
// MST-based lower bounds. Worst case O(n!) nodes, heavily pruned in
// practice; degrades gracefully (still exact, just slow) when the bound
// is loose.
//
// A BranchAndBound value keeps the diagnostics of its most recent Solve;
// use separate values for concurrent solves.
type BranchAndBound struct {
	stats Stats
}

// Name implements Solver.
func (*BranchAndBound) Name() string { return "branch-and-bound" }

// Stats returns the diagnostics recorded by the most recent Solve call.
func (b *BranchAndBound) Stats() Stats { return b.stats }

// Solve implements Solver.
func (b *BranchAndBound) Solve(dist [][]float64) (Result, error) {
	started := time.Now()
	b.stats = Stats{}

	n, err := order(dist)
	if err != nil {
		return Result{}, err
	}
	if route, cost, ok := degenerate(dist, n); ok {
		return Result{Route: route, Cost: cost, Elapsed: time.Since(started)}, nil
	}

	s := newSearch(dist, n)

	// Incumbent seed (§ greedy). With +Inf entries the seed may fail; the
	// search then starts from an infinite incumbent and prunes nothing.
	if seed, seedCost := greedyRoute(dist, n); seed != nil {
		s.bestRoute = seed
		s.bestCost = seedCost
	}

	s.path[0] = 0
	s.dfs(0, 1, 1, 0)
	b.stats = s.stats

	if s.bestRoute == nil || math.IsInf(s.bestCost, 1) {
		return Result{}, ErrIncompleteGraph
	}

	return Result{
		Route:   s.bestRoute,
		Cost:    round1e9(s.bestCost),
		Elapsed: time.Since(started),
	}, nil
}

// bnbSearch owns the state of a single Solve invocation. The incumbent is
// deliberately confined here rather than on the solver value, so repeated
// or concurrent solves never observe each other's search state.
type bnbSearch struct {
	n    int
	dist [][]float64

	// order[u] lists v ≠ u ascending by dist[u][v], lowest index on ties.
	// Filtering the visited nodes preserves the ascending order, so the
	// per-state child ordering required for best-first expansion is a scan.
	order [][]int

	path      []int // path[0..depth-1] of the current partial route
	scratch   []int // reusable unvisited buffer for bound computation
	bestRoute []int // incumbent route (nil until a seed or completion)
	bestCost  float64

	stats Stats
}

func newSearch(dist [][]float64, n int) *bnbSearch {
	s := &bnbSearch{
		n:        n,
		dist:     dist,
		order:    make([][]int, n),
		path:     make([]int, n+1),
		scratch:  make([]int, 0, n),
		bestCost: math.Inf(1),
	}

	var u, v int
	for u = 0; u < n; u++ {
		row := make([]int, 0, n-1)
		for v = 0; v < n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		uu := u
		sort.SliceStable(row, func(i, j int) bool {
			return dist[uu][row[i]] < dist[uu][row[j]]
		})
		s.order[u] = row
	}

	return s
}

// dfs explores the subtree rooted at the partial route path[0..depth-1]
// ending at last, with visited-node bitmask and accumulated cost. The mask
// is passed by value, so each frame owns its snapshot and there is no
// backtracking bookkeeping to undo.
func (s *bnbSearch) dfs(last, depth int, mask uint64, costSoFar float64) {
	s.stats.Explored++

	// Terminal: all nodes placed, close the cycle at the depot.
	if depth == s.n {
		back := s.dist[last][0]
		if math.IsInf(back, 1) {
			return
		}
		if total := costSoFar + back; total < s.bestCost {
			s.path[s.n] = 0
			s.bestRoute = append([]int(nil), s.path...)
			s.bestCost = total
		}

		return
	}

	if s.lowerBound(mask, last, costSoFar) >= s.bestCost {
		s.stats.Pruned++

		return
	}

	var (
		v int
		w float64
	)
	for _, v = range s.order[last] {
		if mask&(1<<uint(v)) != 0 {
			continue
		}
		w = s.dist[last][v]
		if math.IsInf(w, 1) {
			continue
		}
		s.path[depth] = v
		s.dfs(v, depth+1, mask|1<<uint(v), costSoFar+w)
	}
}

// lowerBound computes the admissible completion bound documented in the
// package header for the state identified by (mask, last, costSoFar).
//
// Complexity: O(n²) dominated by the subset MST.
func (s *bnbSearch) lowerBound(mask uint64, last int, costSoFar float64) float64 {
	unvisited := s.scratch[:0]

	var v int
	for v = 0; v < s.n; v++ {
		if mask&(1<<uint(v)) == 0 {
			unvisited = append(unvisited, v)
		}
	}

	switch len(unvisited) {
	case 0:
		return costSoFar + s.dist[last][0]
	case 1:
		u := unvisited[0]

		return costSoFar + s.dist[last][u] + s.dist[u][0]
	}

	var (
		enter = math.Inf(1) // cheapest directed edge last → U
		leave = math.Inf(1) // cheapest directed edge U → depot
		w     float64
	)
	for _, v = range unvisited {
		if w = s.dist[last][v]; w < enter {
			enter = w
		}
		if w = s.dist[v][0]; w < leave {
			leave = w
		}
	}

	return costSoFar + subsetMST(s.dist, unvisited) + enter + leave
}
