package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface in front of the provider response cache
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key for a provider lookup. The namespace keeps
// fact-check and search entries for the same claim apart.
func Key(namespace, claim string) string {
	hash := sha256.Sum256([]byte(claim))
	return "verifysense:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
