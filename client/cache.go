package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached collection. Language is part of the key
// because localized payloads differ per display language.
type Key struct {
	Collection   string
	RestaurantID string
	Language     string
}

func (k Key) String() string {
	return k.Collection + "|" + k.RestaurantID + "|" + k.Language
}

// CacheStats counts cache traffic.
type CacheStats struct {
	Hits          int64
	Misses        int64
	Invalidations int64
}

type cacheEntry struct {
	data      any
	fetchedAt time.Time
	stale     bool
}

// Cache is the collection cache in front of the remote API. Mutations
// invalidate by collection tag; reads go through Fetch, which
// coalesces identical in-flight fetches and keeps serving the last
// good snapshot when a refetch fails.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	group   singleflight.Group
	stats   CacheStats
	nowFunc func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		nowFunc: time.Now,
	}
}

// Fetch returns the cached value for key, fetching through fn when the
// entry is missing or invalidated. Duplicate concurrent fetches for
// the same key share one call. On fetch failure the previous snapshot,
// if any, is returned alongside the error so callers can keep
// rendering stale data.
func (c *Cache) Fetch(ctx context.Context, key Key, fn func(context.Context) (any, error)) (any, error) {
	var (
		cached any
		fresh  bool
	)
	c.mu.RLock()
	entry, ok := c.entries[key.String()]
	if ok {
		cached = entry.data
		fresh = !entry.stale
	}
	c.mu.RUnlock()
	if fresh {
		c.bump(func(s *CacheStats) { s.Hits++ })
		return cached, nil
	}
	c.bump(func(s *CacheStats) { s.Misses++ })

	data, err, _ := c.group.Do(key.String(), func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		if ok {
			return cached, err
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[key.String()] = &cacheEntry{data: data, fetchedAt: c.nowFunc()}
	c.mu.Unlock()
	return data, nil
}

// Refresh always runs fn, bypassing the freshness check, and stores
// the result. Concurrent refreshes for the same key still share one
// call, and a failed refresh keeps serving the previous snapshot.
// This is the poller's entry point: its schedule decides when to
// refetch, the cache only absorbs redundancy and failure.
func (c *Cache) Refresh(ctx context.Context, key Key, fn func(context.Context) (any, error)) (any, error) {
	data, err, _ := c.group.Do(key.String(), func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		c.mu.RLock()
		var cached any
		entry, ok := c.entries[key.String()]
		if ok {
			cached = entry.data
		}
		c.mu.RUnlock()
		if ok {
			return cached, err
		}
		return nil, err
	}
	c.mu.Lock()
	c.entries[key.String()] = &cacheEntry{data: data, fetchedAt: c.nowFunc()}
	c.mu.Unlock()
	return data, nil
}

// Invalidate marks every cached entry of a collection stale, across
// all restaurants and languages. The data stays readable via Snapshot
// until the next successful fetch overwrites it.
func (c *Cache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if keyCollection(k) == collection {
			entry.stale = true
		}
	}
	c.stats.Invalidations++
}

// Snapshot returns the last stored value for key regardless of
// staleness.
func (c *Cache) Snapshot(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return entry.data, true
}

func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Cache) bump(f func(*CacheStats)) {
	c.mu.Lock()
	f(&c.stats)
	c.mu.Unlock()
}

func keyCollection(k string) string {
	for i := 0; i < len(k); i++ {
		if k[i] == '|' {
			return k[:i]
		}
	}
	return k
}
