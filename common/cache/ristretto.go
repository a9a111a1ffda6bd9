// Package cache wraps ristretto behind the small surface the analysis
// layer needs: a bounded, cost-aware store for computed hand queries.
// Hand compositions never go stale during a game, so there is no TTL;
// entries leave only through ristretto's cost-based eviction.
package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// QueryCache is a bounded in-process cache keyed by a hand signature.
type QueryCache struct {
	cache *ristretto.Cache
}

// NewQueryCache creates a cache bounded at maxCost (roughly bytes).
// Counter capacity is sized at ~10x the number of entries the budget
// can hold, assuming the small fixed-size values this package stores.
func NewQueryCache(maxCost int64) (*QueryCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost / 8,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: create ristretto cache: %w", err)
	}
	return &QueryCache{cache: cache}, nil
}

// Set stores value under key at the given cost. Admission is advisory:
// ristretto may decline an entry, which is fine for a pure
// recomputation cache.
func (c *QueryCache) Set(key string, value interface{}, cost int64) bool {
	return c.cache.Set(key, value, cost)
}

// Get returns the cached value for key, if admitted and not evicted.
func (c *QueryCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Delete removes key from the cache.
func (c *QueryCache) Delete(key string) {
	c.cache.Del(key)
}

// Close releases the cache's internal goroutines and buffers.
func (c *QueryCache) Close() {
	c.cache.Close()
}
