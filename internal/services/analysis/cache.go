// Package analysis drives the analysis chart pipeline
package analysis

import (
	"sync"
	"time"

	"github.com/bobmcallan/folio/internal/models"
)

// periodCache holds fetched analysis payloads per period with a TTL,
// so switching back to a recently viewed period renders without a
// round trip.
type periodCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data    *models.AnalysisData
	expires time.Time
}

func newPeriodCache(ttl time.Duration) *periodCache {
	return &periodCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *periodCache) get(period string) (*models.AnalysisData, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[period]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(c.entries, period)
		return nil, false
	}
	return entry.data, true
}

func (c *periodCache) set(period string, data *models.AnalysisData) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[period] = cacheEntry{data: data, expires: time.Now().Add(c.ttl)}
}
