// Package tsp provides Travelling Salesman Problem solvers over a dense
// distance matrix ([][]float64).
//
// Three strategies implement one contract (Solver):
//
//   - NearestNeighbor — greedy O(n²) construction; a baseline, and the
//     incumbent seed for BranchAndBound.
//   - HeldKarp — exact subset dynamic programming, O(n²·2ⁿ) time and
//     O(n·2ⁿ) memory; practical up to n ≈ 20.
//   - BranchAndBound — exact depth-first search with an MST-based
//     admissible lower bound; worst case O(n!), usually far better.
//
// Conventions shared by all solvers:
//   - dist[i][j] is the cost of travelling directly from node i to node j.
//     Matrices may be asymmetric (directed costs). A value of math.Inf(1)
//     marks a missing edge; diagonal entries are zero and never consulted.
//   - Node 0 is the depot: every returned route starts and ends at 0 and
//     visits each other node exactly once (len == n+1).
//   - Finite, non-negative entries are a caller precondition. Solvers check
//     the matrix shape only; NaN or negative values yield undefined results.
//   - Returned costs are stabilized to 1e−9 to avoid cross-platform
//     floating-point drift.
//
// Solvers are synchronous and keep all search state private to one Solve
// call; distinct solver values may run concurrently as long as the shared
// matrix is not mutated.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the solvers in this package.
var (
	// ErrNilMatrix indicates a nil distance matrix (or a nil row).
	ErrNilMatrix = errors.New("tsp: distance matrix is nil")

	// ErrNonSquare indicates that the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrIncompleteGraph indicates that no Hamiltonian cycle exists because
	// a required edge is missing (math.Inf entries block every tour).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrInvalidRoute indicates a route that violates the tour invariants
	// (wrong length, wrong endpoints, or a node visited != exactly once).
	ErrInvalidRoute = errors.New("tsp: invalid route")
)

// Result holds the outcome of one Solve call.
type Result struct {
	// Route is the visiting order: len(Route) == n+1 and
	// Route[0] == Route[n] == 0 for n ≥ 2; [0] for n ≤ 1.
	Route []int

	// Cost is the total cost of the closed tour, equal to the sum of
	// dist[Route[i]][Route[i+1]] over consecutive pairs.
	Cost float64

	// Elapsed is the wall-clock duration of the Solve call. Advisory only;
	// it never influences the returned route or cost.
	Elapsed time.Duration
}

// Solver is the strategy contract shared by all implementations.
// Solve must be deterministic for a fixed matrix.
type Solver interface {
	// Name returns a stable, human-readable strategy identifier.
	Name() string

	// Solve computes a closed tour over the given matrix.
	// The matrix is borrowed read-only for the duration of the call.
	Solve(dist [][]float64) (Result, error)
}
