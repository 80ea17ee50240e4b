// Package cache holds expanded week results so navigating back to an
// already-viewed week does not re-fetch or re-expand. Entries live until
// explicitly invalidated; there is no TTL and no size bound, the working set
// is a handful of weeks per user.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"workspace-chat/internal/calendar"
)

// Key identifies one cached week. Weeks are cached per user so one user's
// calendar never shows up in another's view.
type Key struct {
	UserID     string
	WeekOffset int
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.UserID, k.WeekOffset)
}

// WeekCache is a concurrency-safe week-offset cache with in-flight request
// coalescing: concurrent misses on the same key share a single fill instead
// of racing to populate the entry.
type WeekCache struct {
	mu      sync.RWMutex
	entries map[Key][]calendar.ProcessedEvent
	group   singleflight.Group
}

// New creates an empty WeekCache.
func New() *WeekCache {
	return &WeekCache{
		entries: make(map[Key][]calendar.ProcessedEvent),
	}
}

// Get returns the cached events for the key, if present.
func (c *WeekCache) Get(key Key) ([]calendar.ProcessedEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	events, ok := c.entries[key]
	return events, ok
}

// Put stores events for the key, replacing any existing entry.
func (c *WeekCache) Put(key Key, events []calendar.ProcessedEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = events
}

// Invalidate drops the entry for the key.
func (c *WeekCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Fill returns the cached entry for the key, or runs fn to compute it.
// Concurrent callers for the same key join the same fn call; the shared
// result is stored once. A failing fn stores nothing, so the next call
// retries.
func (c *WeekCache) Fill(key Key, fn func() ([]calendar.ProcessedEvent, error)) ([]calendar.ProcessedEvent, error) {
	if events, ok := c.Get(key); ok {
		return events, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have filled it
		// between our Get and Do.
		if events, ok := c.Get(key); ok {
			return events, nil
		}
		events, err := fn()
		if err != nil {
			return nil, err
		}
		c.Put(key, events)
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]calendar.ProcessedEvent), nil
}

// Len returns the number of cached weeks.
func (c *WeekCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
