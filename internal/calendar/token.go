package calendar

import (
	"sync"
	"time"
)

// defaultTokenTTL matches the one-day lifetime the OAuth access token
// cookie carried.
const defaultTokenTTL = 24 * time.Hour

// TokenCache holds an OAuth access token until it expires.
type TokenCache struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewTokenCache creates an empty cache. ttl <= 0 selects the default
// one-day lifetime.
func NewTokenCache(ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCache{ttl: ttl, now: time.Now}
}

// Set stores a fresh token.
func (c *TokenCache) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.expires = c.now().Add(c.ttl)
}

// Token returns the cached token, or false if none is stored or it has
// expired.
func (c *TokenCache) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || !c.now().Before(c.expires) {
		return "", false
	}
	return c.token, true
}

// Clear drops the cached token.
func (c *TokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expires = time.Time{}
}
