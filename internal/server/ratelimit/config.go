package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultGlobalLimit     = 300
	defaultCleanupInterval = 5 * time.Minute

	// Every chat turn can make up to two generative API calls, so the chat
	// endpoint gets a much tighter budget than the global default.
	defaultChatLimit = 20
	defaultChatBurst = 5
)

// EndpointConfig is the limit for one path and method. Paths ending in "/"
// match as prefixes.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window; 0 means unmetered
	Window time.Duration
	Burst  int           // Burst capacity; defaults to Limit when 0
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Blocklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig builds the limiter configuration from the environment.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", defaultGlobalLimit),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", defaultCleanupInterval),
		Blocklist:       parseIPList(os.Getenv("RATE_LIMIT_BLOCKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits for this service's
// surface. The health check is unmetered via the matcher's special case.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{
			Path:   "/api/chat",
			Method: "POST",
			Limit:  getEnvInt("RATE_LIMIT_CHAT_LIMIT", defaultChatLimit),
			Window: getEnvDuration("RATE_LIMIT_CHAT_WINDOW", time.Minute),
			Burst:  getEnvInt("RATE_LIMIT_CHAT_BURST", defaultChatBurst),
		},
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
