package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/optiroute/optiroute/runner"
	"github.com/optiroute/optiroute/tsp"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "optiroute",
		Short:         "Exact TSP solving over real locations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging on stderr")

	root.AddCommand(newSolveCmd(), newBenchCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	var (
		locationsPath string
		cachePath     string
		solverName    string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance and print the optimal visiting order",
		RunE: func(_ *cobra.Command, _ []string) error {
			solver, err := runner.NewSolver(solverName)
			if err != nil {
				return err
			}

			inst, err := runner.LoadInstance(locationsPath, cachePath)
			if err != nil {
				return err
			}

			results, err := runner.Runner{Log: slog.Default()}.Run(inst.Dist, []tsp.Solver{solver})
			if err != nil {
				return err
			}
			res := results[0]

			fmt.Printf("Solver: %s  (n=%d, took %s)\n",
				res.Solver, len(inst.Locations), res.Elapsed.Round(time.Microsecond))
			fmt.Printf("Total distance: %.2f km\n\n", res.Cost)
			for i, idx := range res.Route {
				fmt.Printf("%2d. %s\n", i, inst.Locations[idx].Name)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&locationsPath, "locations", "l", "", "locations JSON file (required)")
	cmd.Flags().StringVar(&cachePath, "cache", "", "optional distance cache JSON file")
	cmd.Flags().StringVarP(&solverName, "solver", "s", "branch-and-bound",
		"solver: nearest-neighbor | held-karp | branch-and-bound")
	_ = cmd.MarkFlagRequired("locations")

	return cmd
}

func newBenchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run all configured solvers on one instance and compare them",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := runner.LoadConfig(configPath)
			if err != nil {
				return err
			}
			solvers, err := runner.NewSolvers(cfg.Solvers)
			if err != nil {
				return err
			}

			inst, err := runner.LoadInstance(cfg.LocationsFile, cfg.CacheFile)
			if err != nil {
				return err
			}

			results, err := runner.Runner{Log: slog.Default()}.Run(inst.Dist, solvers)
			if err != nil {
				return err
			}
			summary := runner.Summarize(results)

			fmt.Printf("Instance: %s (n=%d)\n\n", inst.Name, len(inst.Locations))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SOLVER\tCOST (KM)\tGAP\tTIME\tEXPLORED\tPRUNED")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\t%s\t%d\t%d\n",
					r.Solver, r.Cost, runner.Gap(r.Cost, summary.BestCost),
					r.Elapsed.Round(time.Microsecond), r.Explored, r.Pruned)
			}
			if err = w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\nBest: %s (%.2f km)\n", summary.BestSolver, summary.BestCost)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "bench.yaml", "benchmark config YAML")

	return cmd
}
