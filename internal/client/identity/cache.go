package identity

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Identity maps an opaque user id to a human-readable display name.
// Entries are immutable once cached.
type Identity struct {
	UserID      string
	DisplayName string
}

// LookupFunc fetches the identity for a user id from the network
type LookupFunc func(ctx context.Context, userID string) (Identity, error)

// Cache is a lazily populated user-id to identity mapping shared across the
// delivery pipelines. It grows monotonically for the lifetime of the owning
// view; there is no eviction. Concurrent lookups for the same id are
// collapsed into a single network call, and failed lookups are never cached,
// so a later call retries.
type Cache struct {
	mu     sync.RWMutex
	byID   map[string]Identity
	group  singleflight.Group
	lookup LookupFunc
}

// NewCache creates an identity cache backed by the given lookup
func NewCache(lookup LookupFunc) *Cache {
	return &Cache{
		byID:   make(map[string]Identity),
		lookup: lookup,
	}
}

// Resolve returns the identity for userID, hitting the network only on the
// first call per id. All concurrent callers for one id receive the same
// result.
func (c *Cache) Resolve(ctx context.Context, userID string) (Identity, error) {
	if id, ok := c.Peek(userID); ok {
		return id, nil
	}

	ch := c.group.DoChan(userID, func() (any, error) {
		id, err := c.lookup(ctx, userID)
		if err != nil {
			return Identity{}, fmt.Errorf("identity lookup for %q failed: %w", userID, err)
		}
		c.mu.Lock()
		c.byID[userID] = id
		c.mu.Unlock()
		return id, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Identity{}, res.Err
		}
		return res.Val.(Identity), nil
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	}
}

// Peek returns the cached identity without any network access
func (c *Cache) Peek(userID string) (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byID[userID]
	return id, ok
}
