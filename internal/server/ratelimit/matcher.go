package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Exact matches win over prefix matches; nil means no match.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// health checks and the SSE stream are never limited
	if method == "GET" && (path == "/health" || path == "/messages/events") {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
