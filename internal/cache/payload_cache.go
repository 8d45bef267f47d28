package cache

import (
	"sync"
	"time"
)

// PayloadEntry represents a cached image payload with expiration
type PayloadEntry struct {
	Payload    string // base64-encoded image data
	MimeType   string
	ExpiryTime time.Time
}

// PayloadCache provides thread-safe caching of image payloads keyed by their
// download URL. Callers that miss fall back to fetching the URL directly.
type PayloadCache struct {
	cache map[string]PayloadEntry
	mutex sync.RWMutex
}

// NewPayloadCache creates a new payload cache instance
func NewPayloadCache() *PayloadCache {
	return &PayloadCache{
		cache: make(map[string]PayloadEntry),
	}
}

// Get retrieves a payload from cache if not expired
func (c *PayloadCache) Get(url string) (PayloadEntry, bool) {
	c.mutex.RLock()
	entry, found := c.cache[url]
	c.mutex.RUnlock()

	if found && time.Now().Before(entry.ExpiryTime) {
		return entry, true
	}

	return PayloadEntry{}, false
}

// Set stores a payload in cache with expiration time
func (c *PayloadCache) Set(url, payload, mimeType string, expiry time.Time) {
	c.mutex.Lock()
	c.cache[url] = PayloadEntry{
		Payload:    payload,
		MimeType:   mimeType,
		ExpiryTime: expiry,
	}
	c.mutex.Unlock()
}

// Invalidate removes a single entry regardless of expiry
func (c *PayloadCache) Invalidate(url string) {
	c.mutex.Lock()
	delete(c.cache, url)
	c.mutex.Unlock()
}

// Clear removes expired entries from cache
func (c *PayloadCache) Clear() {
	c.mutex.Lock()
	for url, entry := range c.cache {
		if time.Now().After(entry.ExpiryTime) {
			delete(c.cache, url)
		}
	}
	c.mutex.Unlock()
}

// Len reports the number of entries currently held, expired or not
func (c *PayloadCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.cache)
}
