// Package cache provides a small read-through cache for the public site
// content (business profile, visible gallery, visible advisory results).
// Admin mutations invalidate the affected key so the landing page never
// serves stale content for longer than one request.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Keys for the public content entries.
const (
	KeyBusinessInfo = "public:business"
	KeyGallery      = "public:gallery"
	KeyResults      = "public:results"
)

// defaultTTL bounds staleness even if an invalidation is missed.
const defaultTTL = 5 * time.Minute

// Cache wraps ristretto with byte-slice values keyed by string.
type Cache struct {
	c *ristretto.Cache[string, []byte]
}

// New creates a cache sized for the handful of public content entries.
func New() (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1000,
		MaxCost:     10 << 20, // cost is the serialized payload size
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// Get returns the cached payload for key, if present.
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.c.Get(key)
}

// Set stores a payload under key with the default TTL.
func (c *Cache) Set(key string, payload []byte) {
	c.c.SetWithTTL(key, payload, int64(len(payload)), defaultTTL)
	// Wait so a read-through Set is visible to the next request.
	c.c.Wait()
}

// Invalidate drops the entry for key.
func (c *Cache) Invalidate(key string) {
	c.c.Del(key)
	c.c.Wait()
}

// Close releases the cache's resources.
func (c *Cache) Close() {
	c.c.Close()
}
