package templates

import (
	"sync"
	"time"
)

// testable time wrapper
var timeNow = time.Now

const listTTL = 5 * time.Minute

// Lister produces the raw template listing for a search term. In production
// this is Client.ListInstalledTemplates.
type Lister func(search string) (string, error)

// Cache memoizes parsed template listings per search term. Listing templates
// shells out to the toolchain and is one of its slowest verbs, so repeated
// lookups within a short window reuse the previous result. Thread-safe.
type Cache struct {
	lister  Lister
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	templates []Template
	timestamp time.Time
}

// NewCache creates a cache around the given lister.
func NewCache(lister Lister) *Cache {
	return &Cache{
		lister:  lister,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the templates matching search, consulting the memoized result
// when it is still fresh.
func (c *Cache) Get(search string) ([]Template, error) {
	c.mu.RLock()
	entry, ok := c.entries[search]
	if ok && timeNow().Sub(entry.timestamp) < listTTL {
		c.mu.RUnlock()
		return entry.templates, nil
	}
	c.mu.RUnlock()

	raw, err := c.lister(search)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[search] = cacheEntry{templates: parsed, timestamp: timeNow()}
	c.mu.Unlock()
	return parsed, nil
}
