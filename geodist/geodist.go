// Package geodist turns geographic locations into the dense distance
// matrices consumed by the tsp package.
//
// Distances are great-circle (haversine) kilometers; node order in the
// produced matrix follows slice order, so the first location is the depot
// by the tsp convention. The package never performs network I/O — remote
// driving-distance acquisition stays outside this repository.
package geodist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrNoLocations indicates an empty location set where at least one
// location is required.
var ErrNoLocations = errors.New("geodist: no locations")

// Location is one routable place. The JSON shape matches the location
// files used by the benchmark tooling (id/name/lat/lon objects).
type Location struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Point returns the location as an orb point (lon/lat order).
func (l Location) Point() orb.Point { return orb.Point{l.Lon, l.Lat} }

// Distance returns the great-circle distance between two locations in
// kilometers.
func Distance(a, b Location) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point()) / 1000.0
}

// Matrix builds the n×n pairwise distance matrix for the given locations.
// The diagonal is zero. Haversine distance is symmetric, but the matrix is
// filled per directed pair so a cached builder with directed entries (see
// Builder) produces the same shape.
//
// Complexity: O(n²).
func Matrix(locations []Location) [][]float64 {
	return Builder{}.Matrix(locations)
}

// Builder computes distance matrices, optionally consulting a pair cache
// before falling back to the haversine computation.
type Builder struct {
	// Cache, when non-nil, is checked for every directed pair and updated
	// with computed misses. Useful when entries were precomputed by an
	// external (e.g. road-network) distance source.
	Cache *Cache
}

// Matrix builds the pairwise matrix, preferring cached entries.
func (b Builder) Matrix(locations []Location) [][]float64 {
	n := len(locations)
	dist := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dist[i][j] = b.distance(locations[i], locations[j])
		}
	}

	return dist
}

func (b Builder) distance(from, to Location) float64 {
	if b.Cache != nil {
		if km, ok := b.Cache.Get(from.Lat, from.Lon, to.Lat, to.Lon); ok {
			return km
		}
	}
	km := Distance(from, to)
	if b.Cache != nil {
		b.Cache.Put(from.Lat, from.Lon, to.Lat, to.Lon, km)
	}

	return km
}

// locationsFile is the on-disk wrapper object: {"locations": [...]}.
type locationsFile struct {
	Locations []Location `json:"locations"`
}

// LoadLocations reads a locations JSON file. Returns ErrNoLocations when
// the file parses but contains no locations.
func LoadLocations(path string) ([]Location, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geodist: read locations: %w", err)
	}

	var f locationsFile
	if err = json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("geodist: parse locations: %w", err)
	}
	if len(f.Locations) == 0 {
		return nil, ErrNoLocations
	}

	return f.Locations, nil
}
