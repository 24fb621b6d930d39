package cache

import (
	"container/list"
	"sync"
	"time"
)

type Config struct {
	MaxSize int
	TTL     time.Duration
}

// LRUCache evicts the least recently used entry once MaxSize is exceeded.
// Entries older than TTL are treated as missing; a zero TTL never expires.
type LRUCache[K comparable, V any] struct {
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	items   map[K]*list.Element
	order   *list.List
}

type entry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
}

func New[K comparable, V any](config Config) *LRUCache[K, V] {
	if config.MaxSize <= 0 {
		config.MaxSize = 100
	}

	return &LRUCache[K, V]{
		maxSize: config.MaxSize,
		ttl:     config.TTL,
		now:     time.Now,
		items:   make(map[K]*list.Element),
		order:   list.New(),
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

// GetOrLoad returns the cached value for key or stores the result of load.
// Errors from load are not cached. The lock is not held while load runs, so
// concurrent misses for one key may each call load.
func (c *LRUCache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	v, err := load()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.Set(key, v)
	return v, false, nil
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		e := element.Value.(*entry[K, V])
		e.value = value
		e.storedAt = c.now()
		c.order.MoveToFront(element)
		return
	}

	element := c.order.PushFront(&entry[K, V]{
		key:      key,
		value:    value,
		storedAt: c.now(),
	})
	c.items[key] = element

	if c.order.Len() > c.maxSize {
		c.removeElement(c.order.Back())
	}
}

func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.removeElement(element)
	}
}

func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order = list.New()
}

func (c *LRUCache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanupExpired drops expired entries, walking from the least recently used end.
func (c *LRUCache[K, V]) CleanupExpired() int {
	if c.ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed int
	for element := c.order.Back(); element != nil; {
		prev := element.Prev()
		if c.expired(element.Value.(*entry[K, V])) {
			c.removeElement(element)
			removed++
		}
		element = prev
	}
	return removed
}

func (c *LRUCache[K, V]) getLocked(key K) (V, bool) {
	var zero V
	element, exists := c.items[key]
	if !exists {
		return zero, false
	}

	e := element.Value.(*entry[K, V])
	if c.expired(e) {
		c.removeElement(element)
		return zero, false
	}

	c.order.MoveToFront(element)
	return e.value, true
}

func (c *LRUCache[K, V]) expired(e *entry[K, V]) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl
}

func (c *LRUCache[K, V]) removeElement(element *list.Element) {
	e := element.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.order.Remove(element)
}
