package resolver

import (
	"container/list"
	"sync"
	"time"
)

// Entry is a cached runtime lookup. Missing marks a lookup that produced no
// usable runtime; it is served as 0 until it expires.
type Entry struct {
	Minutes int
	Missing bool
}

// Cache stores runtime lookups keyed by external movie id.
type Cache interface {
	Get(externalID int64) (Entry, bool)
	Set(externalID int64, entry Entry)
	Delete(externalID int64)
	Len() int
}

// LRUCache is a thread-safe, capacity-bounded cache whose entries expire
// after a fixed TTL.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[int64]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

type cacheItem struct {
	key       int64
	entry     Entry
	expiresAt time.Time
}

// NewLRUCache creates a cache. capacity <= 0 means unbounded; ttl <= 0 means
// entries never expire.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int64]*list.Element),
		order:    list.New(),
		nowFn:    time.Now,
	}
}

// WithClock replaces the expiry clock.
func (c *LRUCache) WithClock(nowFn func() time.Time) *LRUCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFn = nowFn
	return c
}

func (c *LRUCache) Get(externalID int64) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[externalID]
	if !ok {
		return Entry{}, false
	}

	item := elem.Value.(*cacheItem)
	if c.ttl > 0 && !c.nowFn().Before(item.expiresAt) {
		c.removeElement(elem)
		return Entry{}, false
	}

	c.order.MoveToFront(elem)
	return item.entry, true
}

func (c *LRUCache) Set(externalID int64, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.nowFn().Add(c.ttl)

	if elem, ok := c.items[externalID]; ok {
		item := elem.Value.(*cacheItem)
		item.entry = entry
		item.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	if c.capacity > 0 && c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.items[externalID] = c.order.PushFront(&cacheItem{
		key:       externalID,
		entry:     entry,
		expiresAt: expiresAt,
	})
}

func (c *LRUCache) Delete(externalID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[externalID]; ok {
		c.removeElement(elem)
	}
}

// Len counts entries including expired ones not yet evicted.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) removeElement(elem *list.Element) {
	item := elem.Value.(*cacheItem)
	delete(c.items, item.key)
	c.order.Remove(elem)
}
