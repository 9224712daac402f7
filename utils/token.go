package utils

import (
	"sync"
	"time"
)

var (
	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

// BlacklistToken revokes a token id until its expiry.
func BlacklistToken(tokenID string, expiry time.Time) {
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()

	now := time.Now()
	for id, exp := range blacklistedTokens {
		if now.After(exp) {
			delete(blacklistedTokens, id)
		}
	}
	blacklistedTokens[tokenID] = expiry
}

func IsTokenBlacklisted(tokenID string) bool {
	blacklistMutex.RLock()
	defer blacklistMutex.RUnlock()

	expiry, exists := blacklistedTokens[tokenID]
	return exists && time.Now().Before(expiry)
}
