package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/metrics"
	"github.com/guttosm/switchbox-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU caching with TTL expiration for catalog
// search results. The catalog is read-only, so entries never need
// invalidation beyond expiry; Clear exists for catalog reloads.
// It implements the cache.Cache interface.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry represents a single cached result set with expiration tracking.
type cacheEntry struct {
	key       string
	value     []model.Product
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a new TTL-based LRU cache with the specified capacity
// and TTL. A background goroutine periodically cleans up expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached result set if present and unexpired.
func (c *ttlCache) Get(key string) ([]model.Product, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	if !ok || time.Now().After(entry.expiresAt) {
		c.mu.RUnlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	value := entry.value
	c.mu.RUnlock()

	// Promote under write lock.
	c.mu.Lock()
	if e, still := c.items[key]; still {
		c.moveToFront(e)
	}
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set stores a result set, evicting the least recently used entry if full.
func (c *ttlCache) Set(key string, value []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.pushFront(entry)
	metrics.RecordCacheOperation("set", "ok")
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.unlink(entry)
		delete(c.items, key)
	}
}

// Clear removes all entries.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
}

// Stop shuts down the background cleanup goroutine.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// startCleanup periodically removes expired entries until Stop is called.
func (c *ttlCache) startCleanup() {
	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired drops all entries past their expiry.
func (c *ttlCache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.unlink(entry)
			delete(c.items, key)
		}
	}
}

// evictOldest removes the tail entry. Caller holds the write lock.
func (c *ttlCache) evictOldest() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.unlink(c.tail)
	atomic.AddInt64(&c.evictions, 1)
	metrics.RecordCacheOperation("evict", "ok")
}

// pushFront inserts the entry at the head. Caller holds the write lock.
func (c *ttlCache) pushFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// moveToFront promotes the entry to most recently used. Caller holds the lock.
func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if c.head == entry {
		return
	}
	c.unlink(entry)
	c.pushFront(entry)
}

// unlink removes the entry from the LRU list. Caller holds the write lock.
func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else if c.head == entry {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else if c.tail == entry {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
