// Package tsp — minimum spanning tree over a node subset.
//
// Used exclusively as the bound helper inside BranchAndBound: the MST
// weight of the unvisited nodes is a lower bound on the cost of any walk
// that still has to traverse all of them.
package tsp

import "math"

// subsetMST returns the total weight of a minimum spanning tree over the
// given subset of node indices, computed with Prim's algorithm starting
// from nodes[0].
//
// Because the matrix may be directed, each candidate edge uses the cheaper
// direction, min(dist[u][v], dist[v][u]). The relaxed undirected weight
// never exceeds the cost of traversing the pair in whichever direction a
// real tour ends up needing, which keeps the resulting bound admissible.
//
// If the subset is disconnected under this relaxation (possible only with
// +Inf entries), the result is +Inf: the caller treats that branch as
// unconditionally worse than any finite incumbent.
//
// Complexity: O(k²) time and O(k) space for k = len(nodes).
func subsetMST(dist [][]float64, nodes []int) float64 {
	k := len(nodes)
	if k <= 1 {
		return 0
	}

	var (
		inTree = make([]bool, k)
		best   = make([]float64, k) // cheapest connection to the growing tree
		total  float64
	)
	for i := 1; i < k; i++ {
		best[i] = math.Inf(1)
	}
	best[0] = 0

	var (
		it, i, u int
		minW, w  float64
	)
	for it = 0; it < k; it++ {
		// Cheapest node not yet in the tree.
		u, minW = -1, math.Inf(1)
		for i = 0; i < k; i++ {
			if !inTree[i] && best[i] < minW {
				u, minW = i, best[i]
			}
		}
		if u < 0 {
			return math.Inf(1) // disconnected under the relaxation
		}
		inTree[u] = true
		total += best[u]

		// Relax connections through u, symmetrizing each edge.
		for i = 0; i < k; i++ {
			if inTree[i] {
				continue
			}
			w = dist[nodes[u]][nodes[i]]
			if rev := dist[nodes[i]][nodes[u]]; rev < w {
				w = rev
			}
			if w < best[i] {
				best[i] = w
			}
		}
	}

	return total
}
