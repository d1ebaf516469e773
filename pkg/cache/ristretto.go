package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// RistrettoCache implements Cache backed by a ristretto cache.
type RistrettoCache struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

// RistrettoConfig holds ristretto cache configuration.
type RistrettoConfig struct {
	NumCounters int64 // number of keys to track frequency of, ~10x max items
	MaxCost     int64 // maximum number of items (each item costs 1)
	BufferItems int64 // buffer size for Get operations
	Logger      *zap.Logger
}

// NewRistrettoCache creates a new ristretto-backed cache.
func NewRistrettoCache(cfg *RistrettoConfig) (*RistrettoCache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}

	return &RistrettoCache{
		cache:  inner,
		logger: cfg.Logger,
	}, nil
}

// Get retrieves a value from the cache.
func (c *RistrettoCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Set stores a value with a TTL. Every entry has unit cost, so MaxCost acts
// as a plain item limit.
func (c *RistrettoCache) Set(key string, value interface{}, ttl time.Duration) bool {
	ok := c.cache.SetWithTTL(key, value, 1, ttl)
	if !ok {
		c.logger.Debug("cache-set-dropped", zap.String("key", key))
	}
	return ok
}

// Delete removes a value from the cache.
func (c *RistrettoCache) Delete(key string) {
	c.cache.Del(key)
}

// Clear removes all values from the cache.
func (c *RistrettoCache) Clear() {
	c.cache.Clear()
}

// Close closes the cache and releases resources.
func (c *RistrettoCache) Close() {
	c.cache.Close()
}

// Wait blocks until pending writes are visible to Get. Used by tests.
func (c *RistrettoCache) Wait() {
	c.cache.Wait()
}
