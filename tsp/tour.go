// Package tsp — route invariant checks.
package tsp

// ValidateRoute enforces the closed-tour invariants for n nodes with the
// depot fixed at node 0:
//
//	n ≤ 1: route == [0].
//	n ≥ 2: len(route) == n+1, route[0] == route[n] == 0, and every node in
//	       [0..n) appears exactly once among route[0..n-1].
//
// Returns nil if valid, ErrInvalidRoute otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route []int, n int) error {
	if n <= 1 {
		if len(route) == 1 && route[0] == 0 {
			return nil
		}

		return ErrInvalidRoute
	}

	if len(route) != n+1 {
		return ErrInvalidRoute
	}
	if route[0] != 0 || route[n] != 0 {
		return ErrInvalidRoute
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return ErrInvalidRoute
		}
		if seen[v] {
			return ErrInvalidRoute
		}
		seen[v] = true
	}

	return nil
}
