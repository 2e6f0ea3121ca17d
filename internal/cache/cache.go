// Package cache provides process-local memoization of AI completions.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Observer receives hit/miss outcomes (e.g. for metrics).
type Observer interface {
	ObserveCache(hit bool)
}

// Stats is a snapshot of cache contents.
type Stats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// ResponseCache maps derived keys to completion strings. With maxEntries <= 0
// it never evicts; otherwise it keeps the most recently used maxEntries.
type ResponseCache struct {
	mu       sync.RWMutex
	entries  map[string]string
	bounded  *lru.Cache[string, string]
	observer Observer
	group    singleflight.Group
}

// New creates a cache. maxEntries <= 0 means unbounded.
func New(maxEntries int) *ResponseCache {
	c := &ResponseCache{}
	if maxEntries > 0 {
		bounded, err := lru.New[string, string](maxEntries)
		if err == nil {
			c.bounded = bounded
			return c
		}
	}
	c.entries = make(map[string]string)
	return c
}

// Key derives the cache key from provider, exact prompt text and a stable
// serialization of options. Identical inputs always produce the same key.
func Key(provider, prompt string, options any) string {
	serialized, err := json.Marshal(options)
	if err != nil {
		serialized = []byte(fmt.Sprintf("%#v", options))
	}
	sum := sha256.New()
	sum.Write([]byte(provider))
	sum.Write([]byte{0})
	sum.Write([]byte(prompt))
	sum.Write([]byte{0})
	sum.Write(serialized)
	return provider + ":" + hex.EncodeToString(sum.Sum(nil))
}

// SetObserver attaches a hit/miss observer.
func (c *ResponseCache) SetObserver(o Observer) {
	c.mu.Lock()
	c.observer = o
	c.mu.Unlock()
}

// Get returns the cached value for key.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.bounded != nil {
		return c.bounded.Get(key)
	}
	value, ok := c.entries[key]
	return value, ok
}

// Set stores value under key.
func (c *ResponseCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bounded != nil {
		c.bounded.Add(key, value)
		return
	}
	c.entries[key] = value
}

// Clear removes every entry.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bounded != nil {
		c.bounded.Purge()
		return
	}
	c.entries = make(map[string]string)
}

// Stats returns the entry count and sorted keys.
func (c *ResponseCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	if c.bounded != nil {
		keys = c.bounded.Keys()
	} else {
		keys = make([]string, 0, len(c.entries))
		for k := range c.entries {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return Stats{Size: len(keys), Keys: keys}
}

// Do returns the cached value for key or calls fill once, even under
// concurrent callers, and caches its result when it succeeds. hit reports
// whether the value came from the cache.
func (c *ResponseCache) Do(key string, fill func() (string, error)) (value string, hit bool, err error) {
	if value, ok := c.Get(key); ok {
		c.observe(true)
		return value, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if value, ok := c.Get(key); ok {
			return value, nil
		}
		value, err := fill()
		if err != nil {
			return "", err
		}
		c.Set(key, value)
		return value, nil
	})
	c.observe(false)
	if err != nil {
		return "", false, err
	}
	return v.(string), false, nil
}

func (c *ResponseCache) observe(hit bool) {
	c.mu.RLock()
	observer := c.observer
	c.mu.RUnlock()
	if observer != nil {
		observer.ObserveCache(hit)
	}
}
