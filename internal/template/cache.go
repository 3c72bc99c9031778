package template

import (
	"sync"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

// Source resolves a county to its template.
type Source interface {
	Resolve(county domain.County) (*Template, error)
}

// CachedSource wraps a Source with an in-memory LRU cache. Resolved templates
// are immutable, so cached values are safe to share across files.
type CachedSource struct {
	inner Source
	cache *lruCache
}

// NewCachedSource creates a cache decorator around a template source.
func NewCachedSource(inner Source, maxEntries int) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedSource) Resolve(county domain.County) (*Template, error) {
	if tpl, ok := c.cache.get(county); ok {
		return tpl, nil
	}
	tpl, err := c.inner.Resolve(county)
	if err != nil {
		return nil, err
	}
	c.cache.put(county, tpl)
	return tpl, nil
}

// lruCache is a small thread-safe LRU cache of resolved templates.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[domain.County]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   domain.County
	value *Template
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[domain.County]*entry),
	}
}

func (c *lruCache) get(key domain.County) (*Template, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key domain.County, value *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
