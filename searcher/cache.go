package searcher

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-capacity map that evicts the least recently accessed entry
// when full. Both Get and Add count as an access. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	entries  *lru.Cache[K, V]
	capacity int
}

func NewCache[K comparable, V any](capacity int) (*Cache[K, V], error) {
	entries, err := lru.New[K, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("new cache of capacity %d: %w", capacity, err)
	}
	return &Cache[K, V]{entries: entries, capacity: capacity}, nil
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.entries.Get(key)
}

// Add inserts or replaces the value for key and reports whether an entry was evicted.
func (c *Cache[K, V]) Add(key K, value V) bool {
	return c.entries.Add(key, value)
}

func (c *Cache[K, V]) Len() int {
	return c.entries.Len()
}

func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

func (c *Cache[K, V]) Purge() {
	c.entries.Purge()
}

// Keys returns the cached keys from least to most recently accessed.
func (c *Cache[K, V]) Keys() []K {
	return c.entries.Keys()
}
