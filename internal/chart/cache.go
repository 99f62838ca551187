package chart

import (
	"bytes"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// RenderObserver is notified after every actual render.
type RenderObserver interface {
	ObserveRender(figure string, format Format, d time.Duration, err error)
}

// Cache keeps encoded figures in memory. The figures are static, so an
// entry never expires.
type Cache struct {
	observer RenderObserver

	mu      sync.RWMutex
	entries map[string][]byte
	group   singleflight.Group
}

func NewCache(observer RenderObserver) *Cache {
	return &Cache{
		observer: observer,
		entries:  make(map[string][]byte),
	}
}

// Get returns the encoded figure, rendering it on first request. Concurrent
// callers for the same entry share one render.
func (c *Cache) Get(fig Figure, f Format) ([]byte, error) {
	key := fig.Name() + "." + string(f)

	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		data, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return data, nil
		}

		start := time.Now()
		var buf bytes.Buffer
		err := fig.Render(&buf, f)
		if c.observer != nil {
			c.observer.ObserveRender(fig.Name(), f, time.Since(start), err)
		}
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = buf.Bytes()
		c.mu.Unlock()
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
