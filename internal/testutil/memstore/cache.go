//go:build unit

package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type Cache struct {
	mu     sync.Mutex
	values map[string][]byte

	// OnSet runs before every Set, outside the lock.
	OnSet func(key string)

	Hits   int
	Misses int
}

func NewCache() *Cache {
	return &Cache{values: make(map[string][]byte)}
}

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.values[key]
	if !ok {
		c.Misses++
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	if c.OnSet != nil {
		c.OnSet(key)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = b
	return nil
}

func (c *Cache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}
