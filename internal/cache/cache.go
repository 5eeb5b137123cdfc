package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"MarketPulse/internal/model"
)

// SeriesCache persists fetched price series as JSON files with a TTL, so
// repeated refreshes inside the window do not hit the upstream API. The
// analysis core stays stateless; this lives strictly at the I/O boundary.
type SeriesCache struct {
	Dir string
	TTL time.Duration
}

// New creates a cache rooted at dir.
func New(dir string, ttl time.Duration) *SeriesCache {
	return &SeriesCache{Dir: dir, TTL: ttl}
}

// Get returns a cached series for symbol+horizon if one exists and is
// still fresh.
func (c *SeriesCache) Get(symbol, horizon string) (*model.PriceSeries, bool) {
	data, err := os.ReadFile(c.path(symbol, horizon))
	if err != nil {
		return nil, false
	}
	var series model.PriceSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, false
	}
	if time.Since(series.FetchedAt) > c.TTL {
		return nil, false
	}
	return &series, true
}

// Put writes the series to disk, creating the cache directory on demand.
func (c *SeriesCache) Put(series *model.PriceSeries, horizon string) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}
	return os.WriteFile(c.path(series.Symbol, horizon), data, 0644)
}

func (c *SeriesCache) path(symbol, horizon string) string {
	name := sanitizeName(symbol) + "_" + sanitizeName(horizon) + ".json"
	return filepath.Join(c.Dir, name)
}

// sanitizeName keeps filenames safe for symbols like ^GSPC or BRK.B.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
