package resource

import (
	"sync"
	"time"
)

const (
	// DefaultTTL matches the console's historical fetch-cache lifetime.
	DefaultTTL = 5 * time.Minute

	DefaultMaxEntries = 256
)

type entry struct {
	value   any
	setAt   time.Time
	expires time.Time
}

// Cache is a bounded in-memory store keyed by resource path. Entries expire
// after the configured TTL; an expired entry behaves as a miss. Instances
// are independent, so tests run against isolated caches.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]*entry

	now func() time.Time
}

func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		ttl:     ttl,
		max:     maxEntries,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false on a miss or an expired
// entry. Expired entries are dropped on access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = &entry{value: value, setAt: now, expires: now.Add(c.ttl)}

	for len(c.entries) > c.max {
		c.evictOldestLocked()
	}
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.setAt.Before(oldest) {
			oldestKey, oldest = k, e.setAt
			first = false
		}
	}
	delete(c.entries, oldestKey)
}
