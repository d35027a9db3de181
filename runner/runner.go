// Package runner executes and compares TSP solvers on a shared instance.
//
// One Run call solves the same distance matrix with every provided solver,
// validates each answer against the tour invariants, and returns uniformly
// shaped results for reporting. The matrix is borrowed read-only, so the
// solvers inside one Run see identical inputs.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/optiroute/optiroute/tsp"
)

// RunResult is the outcome of one solver on one instance.
type RunResult struct {
	// RunID uniquely identifies this solver execution in logs and reports.
	RunID string

	// Solver is the strategy name (tsp.Solver.Name).
	Solver string

	Route   []int
	Cost    float64
	Elapsed time.Duration

	// Explored and Pruned carry branch-and-bound search diagnostics;
	// zero for strategies that do not report them.
	Explored int64
	Pruned   int64
}

// Runner executes solver comparisons. The zero value is usable and logs
// nowhere; set Log to get per-run progress.
type Runner struct {
	Log *slog.Logger
}

// Run solves dist with every solver in order. It fails fast on the first
// solver error: partial comparisons are worse than none for benchmarking.
func (r Runner) Run(dist [][]float64, solvers []tsp.Solver) ([]RunResult, error) {
	if len(solvers) == 0 {
		return nil, fmt.Errorf("runner: no solvers given")
	}

	log := r.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	n := len(dist)
	results := make([]RunResult, 0, len(solvers))

	for _, s := range solvers {
		id := uuid.NewString()
		log.Info("solving", "run_id", id, "solver", s.Name(), "n", n)

		res, err := s.Solve(dist)
		if err != nil {
			return nil, fmt.Errorf("runner: %s: %w", s.Name(), err)
		}
		if err = tsp.ValidateRoute(res.Route, n); err != nil {
			return nil, fmt.Errorf("runner: %s returned invalid route: %w", s.Name(), err)
		}

		rr := RunResult{
			RunID:   id,
			Solver:  s.Name(),
			Route:   res.Route,
			Cost:    res.Cost,
			Elapsed: res.Elapsed,
		}
		if bb, ok := s.(*tsp.BranchAndBound); ok {
			stats := bb.Stats()
			rr.Explored, rr.Pruned = stats.Explored, stats.Pruned
		}

		log.Info("solved",
			"run_id", id, "solver", s.Name(),
			"cost", res.Cost, "elapsed", res.Elapsed)

		results = append(results, rr)
	}

	return results, nil
}

// Summary aggregates a comparison across solvers.
type Summary struct {
	BestSolver string
	BestCost   float64
	WorstCost  float64
	MeanCost   float64
}

// Summarize computes comparison statistics over results from one instance.
func Summarize(results []RunResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	s := Summary{
		BestSolver: results[0].Solver,
		BestCost:   results[0].Cost,
		WorstCost:  results[0].Cost,
	}

	var total float64
	for _, r := range results {
		total += r.Cost
		if r.Cost < s.BestCost {
			s.BestCost, s.BestSolver = r.Cost, r.Solver
		}
		if r.Cost > s.WorstCost {
			s.WorstCost = r.Cost
		}
	}
	s.MeanCost = total / float64(len(results))

	return s
}

// Gap returns how far cost sits above best, as a percentage of best.
// Zero when best is zero (degenerate instances).
func Gap(cost, best float64) float64 {
	if best == 0 {
		return 0
	}

	return (cost - best) / best * 100
}
