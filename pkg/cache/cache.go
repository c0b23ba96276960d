package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a TTL cache for reference data that is read on every sale but
// changes rarely, e.g. promo code rates.
type Cache struct {
	c *gocache.Cache
}

func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		c: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.c.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.c.SetDefault(key, value)
}

func (c *Cache) Delete(key string) {
	c.c.Delete(key)
}
