// Package cache keeps recently served logo assets in memory.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

var _ ports.Cache = (*LRU)(nil)

// LRU is a size-bounded ports.Cache. Entries older than the TTL are
// dropped; a zero TTL keeps them until evicted.
type LRU struct {
	entries *expirable.LRU[string, []byte]
}

// NewLRU creates an LRU holding at most size entries.
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 1
	}

	return &LRU{entries: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

// Get implements ports.Cache.
func (c *LRU) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.entries.Get(key)
	if !ok {
		return nil, domain.NewNotFoundError("cache entry", key)
	}

	return slices.Clone(value), nil
}

// Set implements ports.Cache.
func (c *LRU) Set(_ context.Context, key string, value []byte) error {
	c.entries.Add(key, slices.Clone(value))
	return nil
}

// Delete implements ports.Cache.
func (c *LRU) Delete(_ context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}

// Purge implements ports.Cache.
func (c *LRU) Purge(_ context.Context) {
	c.entries.Purge()
}

// Len reports the number of live entries.
func (c *LRU) Len() int {
	return c.entries.Len()
}
