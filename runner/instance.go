package runner

import (
	"fmt"
	"log/slog"

	"github.com/optiroute/optiroute/geodist"
)

// Instance pairs a named location set with its distance matrix. All
// solvers in one comparison run against the same Dist.
type Instance struct {
	Name      string
	Locations []geodist.Location
	Dist      [][]float64
}

// LoadInstance reads a locations JSON file and builds its distance matrix.
// When cachePath is non-empty the pair cache is consulted before computing
// and written back afterwards, so repeated loads reuse prior distances.
func LoadInstance(locationsPath, cachePath string) (Instance, error) {
	locs, err := geodist.LoadLocations(locationsPath)
	if err != nil {
		return Instance{}, fmt.Errorf("runner: load instance: %w", err)
	}
	slog.Debug("loaded locations", "path", locationsPath, "count", len(locs))

	builder := geodist.Builder{}
	var cache *geodist.Cache
	if cachePath != "" {
		if cache, err = geodist.LoadCache(cachePath); err != nil {
			return Instance{}, fmt.Errorf("runner: load instance: %w", err)
		}
		builder.Cache = cache
		slog.Debug("loaded distance cache", "path", cachePath, "entries", cache.Len())
	}

	inst := Instance{
		Name:      locationsPath,
		Locations: locs,
		Dist:      builder.Matrix(locs),
	}

	if cache != nil {
		if err = cache.Save(cachePath); err != nil {
			return Instance{}, fmt.Errorf("runner: save cache: %w", err)
		}
	}

	return inst, nil
}
