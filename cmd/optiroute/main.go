// Command optiroute solves and benchmarks travelling-salesman instances
// over real locations: it loads a locations file, builds a great-circle
// distance matrix, runs one or more exact/heuristic solvers, and reports
// the visiting order with its total cost.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
