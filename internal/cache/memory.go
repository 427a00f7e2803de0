package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory implements in-process caching of annotation payloads
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a new memory store with the given default TTL
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, 10*time.Minute),
	}
}

// Get retrieves a value from the store
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL (0 uses the default)
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the store
func (m *Memory) Delete(key string) error {
	m.cache.Delete(key)
	return nil
}

// Clear removes all values from the store
func (m *Memory) Clear() error {
	m.cache.Flush()
	return nil
}
