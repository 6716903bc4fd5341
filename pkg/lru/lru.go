// Package lru provides a fixed-capacity least-recently-used cache.
//
// Cache is not safe for concurrent use. Wrap it with package synclru, or
// guard it with your own lock, when several goroutines share one instance.
package lru

import "fmt"

// none marks the absence of a slot in prev/next links and head/tail.
const none = -1

// slot holds one entry of the recency list. Links are indexes into
// Cache.slots rather than pointers so that evicted slots can be reused
// in place.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int // more recently used
	next  int // less recently used
}

// Cache is an LRU cache with a fixed capacity.
//
// Both Get and Put mark an entry as most recently used. When a Put inserts a
// new key into a full cache, the least recently used entry is evicted.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]int    // key -> position in slots
	slots    []slot[K, V] // grows lazily up to capacity
	head     int          // most recently used
	tail     int          // least recently used
	listener EvictionListener[K, V]
}

// New creates a cache holding at most capacity entries.
// It fails with ErrInvalidArgument when capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than zero, got %d", ErrInvalidArgument, capacity)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]int),
		head:     none,
		tail:     none,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the value stored for key and marks it as most recently used.
// It fails with ErrNotFound when the key is absent.
func (c *Cache[K, V]) Get(key K) (V, error) {
	var zero V
	if isNil(key) {
		return zero, fmt.Errorf("%w: key must not be nil", ErrInvalidArgument)
	}

	i, ok := c.index[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	c.moveToFront(i)
	return c.slots[i].value, nil
}

// Put stores value under key and marks the key as most recently used.
// Inserting a new key into a full cache evicts the least recently used entry;
// updating an existing key never evicts.
//
// Only a nil interface key or value is rejected. Typed nils such as a nil
// pointer, map or slice are stored like any other value.
func (c *Cache[K, V]) Put(key K, value V) error {
	if isNil(key) {
		return fmt.Errorf("%w: key must not be nil", ErrInvalidArgument)
	}
	if isNil(value) {
		return fmt.Errorf("%w: value must not be nil", ErrInvalidArgument)
	}

	if i, ok := c.index[key]; ok {
		c.slots[i].value = value
		c.moveToFront(i)
		return nil
	}

	if len(c.slots) < c.capacity {
		c.slots = append(c.slots, slot[K, V]{key: key, value: value, prev: none, next: none})
		i := len(c.slots) - 1
		c.index[key] = i
		c.pushFront(i)
		return nil
	}

	// Full: the tail slot is unlinked and reused for the new key.
	i := c.tail
	evicted := c.slots[i]
	c.unlink(i)
	delete(c.index, evicted.key)

	c.slots[i] = slot[K, V]{key: key, value: value, prev: none, next: none}
	c.index[key] = i
	c.pushFront(i)

	if c.listener != nil {
		c.listener.OnEvict(evicted.key, evicted.value)
	}
	return nil
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the capacity the cache was created with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns a copy of the keys ordered from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for i := c.head; i != none; i = c.slots[i].next {
		keys = append(keys, c.slots[i].key)
	}
	return keys
}

// Items returns a copy of the cached key/value pairs.
func (c *Cache[K, V]) Items() map[K]V {
	items := make(map[K]V, len(c.index))
	for key, i := range c.index {
		items[key] = c.slots[i].value
	}
	return items
}

func (c *Cache[K, V]) moveToFront(i int) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

func (c *Cache[K, V]) pushFront(i int) {
	s := &c.slots[i]
	s.prev = none
	s.next = c.head
	if c.head != none {
		c.slots[c.head].prev = i
	}
	c.head = i
	if c.tail == none {
		c.tail = i
	}
}

func (c *Cache[K, V]) unlink(i int) {
	s := &c.slots[i]
	if s.prev != none {
		c.slots[s.prev].next = s.next
	} else {
		c.head = s.next
	}
	if s.next != none {
		c.slots[s.next].prev = s.prev
	} else {
		c.tail = s.prev
	}
	s.prev, s.next = none, none
}

// isNil reports whether v is a nil interface. Only interface-typed K or V
// can hold such a value.
func isNil[T any](v T) bool {
	return any(v) == nil
}
