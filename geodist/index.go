// Package geodist — spatial lookup over a location set.
package geodist

import (
	"math"

	"github.com/tidwall/rtree"
)

// Index answers nearest-location queries over a fixed location set.
// Backed by an R-tree keyed on lon/lat points; candidate hits from a
// bounding-box search are refined with exact haversine distances.
//
// Read-only after construction and safe for concurrent queries.
type Index struct {
	tr   rtree.RTree
	size int
}

// initialWindow is the half-width in degrees of the first candidate box
// (≈1.1 km at the equator). The window quadruples until it finds a
// candidate or covers the globe.
const initialWindow = 0.01

// kmPerDegree is the conservative km→degree conversion used when widening
// a candidate window (one degree of latitude ≈ 111 km).
const kmPerDegree = 111.0

// NewIndex builds an index over the given locations.
func NewIndex(locations []Location) *Index {
	ix := &Index{size: len(locations)}
	for i := range locations {
		p := [2]float64{locations[i].Lon, locations[i].Lat}
		ix.tr.Insert(p, p, locations[i])
	}

	return ix
}

// Len reports the number of indexed locations.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the indexed location closest to the query point and the
// great-circle distance to it in kilometers.
func (ix *Index) Nearest(lat, lon float64) (Location, float64, error) {
	if ix.size == 0 {
		return Location{}, 0, ErrNoLocations
	}

	query := Location{Lat: lat, Lon: lon}

	var (
		best     Location
		bestKM   = math.Inf(1)
		found    bool
		halfSpan = initialWindow
	)
	for {
		min := [2]float64{lon - halfSpan, lat - halfSpan}
		max := [2]float64{lon + halfSpan, lat + halfSpan}

		ix.tr.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
			loc := data.(Location)
			if km := Distance(query, loc); km < bestKM {
				best, bestKM = loc, km
				found = true
			}

			return true
		})

		if found {
			// A candidate near a box edge can hide a closer location just
			// outside it; rescan once with a window covering bestKM.
			refine := 2*bestKM/kmPerDegree + initialWindow
			if refine > halfSpan {
				min = [2]float64{lon - refine, lat - refine}
				max = [2]float64{lon + refine, lat + refine}
				ix.tr.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
					loc := data.(Location)
					if km := Distance(query, loc); km < bestKM {
						best, bestKM = loc, km
					}

					return true
				})
			}

			return best, bestKM, nil
		}
		if halfSpan >= 360 {
			// Non-empty index inside a global window: unreachable unless
			// coordinates are out of range, but fail cleanly either way.
			return Location{}, 0, ErrNoLocations
		}
		halfSpan *= 4
	}
}
