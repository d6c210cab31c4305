package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap per request.
var pathPatterns = []*PathPattern{
	// Static article routes first so they are never mistaken for IDs.
	{Pattern: regexp.MustCompile(`^/articles/search/?$`), Template: "/articles/search"},

	// Article routes with opaque string IDs (UUIDs).
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/0b3c6a42-...) to template format
// (e.g., /articles/:id). Static paths and the search endpoint remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/0b3c6a42")     // "/articles/:id"
//	NormalizePath("/articles/search")       // "/articles/search" (unchanged)
//	NormalizePath("/articles")              // "/articles" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/articles/abc?page=1")   // "/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip a single trailing slash so /articles/123/ matches too
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
