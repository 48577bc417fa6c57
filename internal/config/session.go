package config

import (
	"sync"
	"time"
)

// Matches how long the backend keeps an uploaded CV. Expiring a visitor
// earlier would drop the cookie jar, and with it the CV, while the backend
// still has it.
const defaultSessionTTL = 24 * time.Hour

type SessionConfig struct {
	TTL time.Duration
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		sessionConfig = readSessionConfig()
	})
	return sessionConfig
}

func readSessionConfig() *SessionConfig {
	ttl := parseDuration("SESSION_TTL", defaultSessionTTL)
	if ttl == 0 {
		ttl = defaultSessionTTL
	}
	return &SessionConfig{TTL: ttl}
}
