// Package geodist — persistent pair cache.
//
// The cache keys directed coordinate pairs rounded to six decimal places
// (≈0.11 m), the same resolution the benchmark tooling has always used for
// its distance_cache.json files, and round-trips through plain JSON.
package geodist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is an in-memory map of directed coordinate-pair distances with
// optional JSON persistence. Not safe for concurrent mutation.
type Cache struct {
	entries map[string]float64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]float64)}
}

// pairKey formats a directed pair at six-decimal resolution.
func pairKey(lat1, lon1, lat2, lon2 float64) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", lat1, lon1, lat2, lon2)
}

// Get looks up the distance for a directed pair.
func (c *Cache) Get(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	km, ok := c.entries[pairKey(lat1, lon1, lat2, lon2)]

	return km, ok
}

// Put stores the distance for a directed pair, overwriting any previous
// value.
func (c *Cache) Put(lat1, lon1, lat2, lon2, km float64) {
	c.entries[pairKey(lat1, lon1, lat2, lon2)] = km
}

// Len reports the number of cached pairs.
func (c *Cache) Len() int { return len(c.entries) }

// LoadCache reads a cache file. A missing file yields an empty cache, so
// first runs need no setup.
func LoadCache(path string) (*Cache, error) {
	c := NewCache()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("geodist: read cache: %w", err)
	}
	if err = json.Unmarshal(raw, &c.entries); err != nil {
		return nil, fmt.Errorf("geodist: parse cache: %w", err)
	}

	return c, nil
}

// Save writes the cache as indented JSON, creating parent directories as
// needed.
func (c *Cache) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("geodist: create cache dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("geodist: encode cache: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("geodist: write cache: %w", err)
	}

	return nil
}
