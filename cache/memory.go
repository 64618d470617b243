package cache

import (
	"sync"
	"time"
)

// entry is one cached translation with its insertion time.
type entry struct {
	value   string
	addedAt time.Time
}

// MemoryCache is a thread-safe in-memory translation cache with optional TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewMemoryCache creates an in-memory cache. A ttl of 0 or less means entries
// never expire.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get retrieves a value, dropping it when expired.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.ttl > 0 && time.Since(e.addedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}

	return e.value, true
}

// Set stores a value. Never fails for the in-memory backend.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, addedAt: time.Now()}
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// swept by Get.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Entries returns all unexpired entries, for export.
func (c *MemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	now := time.Now()
	for key, e := range c.entries {
		if c.ttl > 0 && now.Sub(e.addedAt) > c.ttl {
			continue
		}
		out[key] = e.value
	}
	return out
}

// Verify MemoryCache implements TranslationCache
var _ TranslationCache = (*MemoryCache)(nil)
