package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedPlayerEntry wraps a player save with version metadata for cache invalidation
type cachedPlayerEntry struct {
	Version  string              `json:"version"`
	State    *domain.PlayerState `json:"state"`
	CachedAt time.Time           `json:"cached_at"`
}

// playerCache provides an in-memory LRU cache for player save lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]
}

// newPlayerCache creates a new player cache with the specified size and TTL.
func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

// Get retrieves a player save from the cache. Returns a deep copy so callers
// cannot mutate the cached entry through the returned pointer.
func (c *playerCache) Get(playerID string) (*domain.PlayerState, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}

	return entry.State.Clone(), true
}

// Set stores a player save in the cache with current schema version.
func (c *playerCache) Set(playerID string, state *domain.PlayerState) {
	entry := &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		State:    state.Clone(),
		CachedAt: time.Now(),
	}
	c.lru.Add(playerID, entry)
}

// Invalidate removes a player save from the cache.
func (c *playerCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Clear removes all entries from the cache.
func (c *playerCache) Clear() {
	c.lru.Purge()
}
