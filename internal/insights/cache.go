package insights

import (
	"fmt"
	"sync"
	"time"

	"reviews-backend/internal/reviews"
)

// DefaultCacheTTL sits inside the 3-10 minute band appropriate for the
// engine's cost: recomputation is cheap but not free at dashboard refresh
// rates.
const DefaultCacheTTL = 5 * time.Minute

// Cache memoizes summaries by a content fingerprint with a bounded TTL.
// It is an explicit, injectable value rather than package-level state so
// tests can supply a fake clock and avoid cross-test pollution.
//
// Concurrent calls with an identical key may race to populate the same
// entry; the computation is idempotent so last-write-wins is harmless.
// Entries are never invalidated by mutation of the underlying review slice:
// callers are expected to replace the slice wholesale, not mutate in place.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value   AnalysisSummaryData
	expires time.Time
}

// NewCache constructs a Cache. A nil now falls back to time.Now and a
// non-positive ttl falls back to DefaultCacheTTL.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns a cached summary if present and unexpired.
func (c *Cache) Get(key string) (AnalysisSummaryData, bool) {
	if c == nil {
		return AnalysisSummaryData{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expires) {
		return AnalysisSummaryData{}, false
	}
	return entry.value, true
}

// Put stores a summary and sweeps expired entries while it holds the lock.
func (c *Cache) Put(key string, value AnalysisSummaryData) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{value: value, expires: now.Add(c.ttl)}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// fingerprint derives a cheap content key from the review set and config:
// review count, rating sum, newest timestamp and the resolved config. It is
// deliberately not a full content hash; replacing the slice with materially
// different data of identical shape is treated as the same input.
func fingerprint(revs []reviews.Review, cfg AnalysisConfig) string {
	ratingSum := 0
	var newest time.Time
	responded := 0
	for _, r := range revs {
		ratingSum += r.Rating
		if hasResponse(r) {
			responded++
		}
		if t, ok := reviewDate(r); ok && t.After(newest) {
			newest = t
		}
	}
	custom := ""
	if cfg.CustomRange != nil {
		custom = cfg.CustomRange.Start.UTC().Format(time.RFC3339) + ".." + cfg.CustomRange.End.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("n=%d|rs=%d|resp=%d|newest=%d|tp=%s|cmp=%s|cr=%s|s=%t|t=%t|a=%t",
		len(revs), ratingSum, responded, newest.Unix(),
		cfg.TimePeriod, cfg.ComparisonPeriod, custom,
		cfg.IncludeStaffAnalysis, cfg.IncludeThematicAnalysis, cfg.IncludeActionItems)
}
