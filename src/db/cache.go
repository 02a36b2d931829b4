package db

import (
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache fronts the ledger read endpoints. Keys are tracked alongside the
// ristretto instance so a sync commit can clear every ledger entry at once.
type Cache struct {
	cache *ristretto.Cache

	mu   sync.Mutex
	keys map[string]struct{}
}

func NewCache() (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &Cache{cache: c, keys: make(map[string]struct{})}, nil
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.keys[key] = struct{}{}
	c.mu.Unlock()
	c.cache.Set(key, value, 1)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Clear drops every tracked ledger entry. Called after each sync commit so
// readers never see pre-sync state.
func (c *Cache) Clear() {
	c.mu.Lock()
	for key := range c.keys {
		c.cache.Del(key)
	}
	c.keys = make(map[string]struct{})
	c.mu.Unlock()
}
