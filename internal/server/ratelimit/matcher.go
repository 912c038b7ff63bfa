package ratelimit

import "strings"

// MatchEndpoint resolves a request path and method to its endpoint
// configuration, or nil when only the global default applies. Paths ending in
// "/" match as prefixes.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is always unmetered: probes must never be throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}
