// Package runner — benchmark configuration and solver selection.
package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/optiroute/optiroute/tsp"
)

// ErrUnknownSolver indicates a solver name with no registered strategy.
var ErrUnknownSolver = errors.New("runner: unknown solver")

// Config is the YAML benchmark description:
//
//	locations_file: data/singapore_locations.json
//	cache_file: data/distance_cache.json   # optional
//	solvers: [nearest-neighbor, held-karp, branch-and-bound]
type Config struct {
	LocationsFile string   `yaml:"locations_file"`
	CacheFile     string   `yaml:"cache_file"`
	Solvers       []string `yaml:"solvers"`
}

// LoadConfig reads and validates a benchmark config file. An omitted
// solvers list defaults to every registered strategy.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runner: read config: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("runner: parse config: %w", err)
	}
	if c.LocationsFile == "" {
		return Config{}, fmt.Errorf("runner: config missing locations_file")
	}
	if len(c.Solvers) == 0 {
		c.Solvers = SolverNames()
	}
	for _, name := range c.Solvers {
		if _, err = NewSolver(name); err != nil {
			return Config{}, err
		}
	}

	return c, nil
}

// SolverNames lists the registered strategy names in reporting order.
func SolverNames() []string {
	return []string{"nearest-neighbor", "held-karp", "branch-and-bound"}
}

// NewSolver constructs the strategy registered under name. Matching is
// case-insensitive and tolerates underscores for YAML written by hand.
func NewSolver(name string) (tsp.Solver, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "nearest-neighbor", "greedy":
		return tsp.NearestNeighbor{}, nil
	case "held-karp", "dp":
		return tsp.HeldKarp{}, nil
	case "branch-and-bound", "bnb":
		return &tsp.BranchAndBound{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}

// NewSolvers constructs a strategy per name, preserving order.
func NewSolvers(names []string) ([]tsp.Solver, error) {
	solvers := make([]tsp.Solver, 0, len(names))
	for _, name := range names {
		s, err := NewSolver(name)
		if err != nil {
			return nil, err
		}
		solvers = append(solvers, s)
	}

	return solvers, nil
}
