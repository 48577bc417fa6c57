package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultBackendURL = "http://localhost:5001"

type BackendConfig struct {
	BaseURL string
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout time.Duration
}

var (
	backendConfig *BackendConfig
	backendOnce   sync.Once
)

func LoadBackendConfig() *BackendConfig {
	backendOnce.Do(func() {
		baseURL := strings.TrimRight(os.Getenv("BACKEND_URL"), "/")
		if baseURL == "" {
			baseURL = defaultBackendURL
			log.Printf("Warning: BACKEND_URL not set, defaulting to %s", baseURL)
		}
		backendConfig = &BackendConfig{
			BaseURL: baseURL,
			Timeout: parseDuration("BACKEND_TIMEOUT", 0),
		}
	})
	return backendConfig
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
