package completion

import (
	"strings"
	"sync"
)

// DefaultCacheSize bounds the number of retained completion results.
const DefaultCacheSize = 1000

// Cache maps normalized lowercase input text to previously obtained
// suggestions. Inserts stop once the cap is reached; existing entries are
// never evicted and live for the process lifetime.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]string
	max     int
}

// NewCache builds a cache holding at most max entries. max <= 0 selects
// DefaultCacheSize.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{entries: make(map[string][]string), max: max}
}

// Key derives the cache key for text: whitespace runs collapsed to single
// spaces, trimmed, lowercased. Inputs differing only in case or incidental
// whitespace share a key.
func Key(text string) string {
	return strings.ToLower(Normalize(text))
}

// Normalize collapses internal whitespace runs to single spaces and trims.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Get returns the cached completions for key, if any.
func (c *Cache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores completions under key unless the cache is full. A full cache
// silently drops new entries; concurrent writers for the same key may both
// store, last writer wins.
func (c *Cache) Put(key string, completions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.max {
		return
	}
	c.entries[key] = completions
}

// Len reports the number of retained entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
