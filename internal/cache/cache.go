package cache

import (
	"container/list"
	"fmt"
)

// Cache is a bounded in-memory key–value cache with LRU eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency ordering.
// The two structures always agree on membership; every operation moves the
// cache from one consistent state to another, never leaving a key in only
// one of them.
//
// Cache is not safe for concurrent use. It is a single mutable resource
// with one logical owner; callers that need sharing wrap it in their own
// mutual exclusion.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	lru      *list.List // Front = most recently used (MRU), Back = least recently used (LRU)
}

// entry is the value stored in the LRU list elements.
// We keep the key here because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New constructs an empty cache holding at most capacity entries.
//
// capacity == 0 is valid and yields an always-empty cache: Put stores
// nothing, so every later Get misses. A negative capacity is treated as 0.
//
// New never returns a nil Cache.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		lru:      list.New(),
	}
}

// Put writes/overwrites a key and marks it most recently used.
//
// Inserting a new key into a full cache first evicts the least recently
// used entry, so the size never exceeds the capacity. Exactly one entry is
// removed per eviction. On a zero-capacity cache Put stores nothing.
//
// Complexity: O(1).
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value

		// Updating counts as use; move to MRU.
		c.lru.MoveToFront(el)
		return
	}

	if len(c.items) == c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.lru.PushFront(&entry[K, V]{key: key, value: value})
}

// Get reads a key and marks it most recently used.
//
// The recency update is the point of LRU tracking: reads count as uses, so
// a hit moves the key away from the eviction end of the order. A miss
// returns the zero value and false, mutating nothing.
//
// Complexity: O(1).
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.lru.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Contains reports whether key is stored, without updating its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Peek reads a key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[K, V]).value, true
}

// Remove deletes a key if present and returns the removed value.
// A miss returns the zero value and false, mutating nothing.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.removeElement(el), true
}

// RemoveOldest evicts the least recently used entry and returns its key
// and value. It reports false on an empty cache.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	el := c.lru.Back()
	if el == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key := el.Value.(*entry[K, V]).key
	return key, c.removeElement(el), true
}

// Clear empties the cache. The capacity is retained, so the cache is
// immediately reusable. Clearing an empty cache is a no-op.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.lru.Init()
}

// Len returns the number of currently stored entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.items) == 0
}

// Keys returns the stored keys in LRU -> MRU order, so the first key is
// the next eviction candidate.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.items))
	for el := c.lru.Back(); el != nil; el = el.Prev() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

// String renders the capacity and the recency-ordered key sequence,
// oldest first.
//
// This is a debug/teaching helper used by the demo; the format is not
// meant for parsing or persistence.
func (c *Cache[K, V]) String() string {
	return fmt.Sprintf("Cache(capacity=%d, keys=%v)", c.capacity, c.Keys())
}

func (c *Cache[K, V]) evictOldest() {
	el := c.lru.Back()
	if el == nil {
		return
	}
	c.removeElement(el)
}

// removeElement deletes an entry from both the map and the list, keeping
// the two structures in agreement.
func (c *Cache[K, V]) removeElement(el *list.Element) V {
	e := el.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.lru.Remove(el)
	return e.value
}
