package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store defines the interface for caching annotation payloads
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for an annotation request. The provider name
// is part of the key so switching engines never serves stale parses.
func Key(provider, text string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + text))
	return "inklet:v1:" + hex.EncodeToString(hash[:])
}
