// Package middleware provides cross-cutting HTTP middleware that is
// configured independently of individual handlers.
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	// Configurable via CORS_ALLOWED_METHODS environment variable.
	// Default: ["GET", "POST", "PUT", "DELETE", "OPTIONS"]
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	// Configurable via CORS_ALLOWED_HEADERS environment variable.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	// Configurable via CORS_MAX_AGE environment variable.
	// Default: 86400 (24 hours)
	MaxAge int

	// Validator is the origin validation strategy. The default configuration
	// allows every origin; a whitelist can be configured via CORS_ALLOWED_ORIGINS.
	Validator OriginValidator
}

// LoadCORSConfig builds a CORSConfig from environment variables.
//
// CORS_ALLOWED_ORIGINS is a comma-separated whitelist; empty or "*" means
// every origin is allowed.
func LoadCORSConfig() CORSConfig {
	cfg := CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
		Validator:      AllowAllValidator{},
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" && v != "*" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Validator = WhitelistValidator{Origins: origins}
		}
	}

	if v := os.Getenv("CORS_ALLOWED_METHODS"); v != "" {
		cfg.AllowedMethods = splitTrim(v)
	}
	if v := os.Getenv("CORS_ALLOWED_HEADERS"); v != "" {
		cfg.AllowedHeaders = splitTrim(v)
	}
	if v := os.Getenv("CORS_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAge = n
		}
	}

	return cfg
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CORS returns an HTTP middleware that handles cross-origin requests.
//
// Behavior:
//   - If the Origin header is empty, skip CORS processing (same-origin request)
//   - If the origin is not allowed, continue without CORS headers; the
//     browser blocks the response
//   - Preflight OPTIONS requests get the full header set and 204 No Content
//     without reaching the next handler
//   - Actual requests get Access-Control-Allow-Origin and pass through
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				next.ServeHTTP(w, r)
				return
			}

			if _, allowAll := config.Validator.(AllowAllValidator); allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
