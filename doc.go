// Package optiroute solves the travelling-salesman problem exactly for
// small-to-moderate instances (a depot plus up to ~20 stops).
//
// The repository is organized around one hard core and thin tooling:
//
//	tsp/     — the solver contract and three strategies: nearest-neighbor
//	           (greedy baseline), Held–Karp (exact DP) and branch-and-bound
//	           (exact search with an MST-based admissible lower bound).
//	geodist/ — locations, great-circle distance matrices, a persistent
//	           pair cache and a nearest-location index.
//	runner/  — multi-solver benchmark runs with structured logging and
//	           YAML configuration.
//	cmd/optiroute — the CLI: solve one instance or benchmark all solvers.
//
// The core consumes a finished n×n matrix of non-negative costs (directed
// costs welcome) and returns a closed tour starting and ending at node 0
// together with its total cost. Distance acquisition beyond straight-line
// geometry — geocoding, road networks, remote APIs — is deliberately left
// to external collaborators.
package optiroute
