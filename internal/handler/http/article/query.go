package article

import (
	"net/http"
	"strings"

	"article-api/internal/repository"
)

// parseFilter builds an ArticleFilter from listing query parameters.
//
// Recognized parameters:
//   - q: free-text search term (used as-is)
//   - published: the literal string "true" activates the published filter;
//     any other value, including absence, means "no filter"
//   - tags: comma-separated list; tokens are trimmed and empty tokens dropped,
//     an empty result means "no filter"
//
// Filter parsing never fails: unrecognized values simply leave the
// corresponding predicate unset.
func parseFilter(r *http.Request) repository.ArticleFilter {
	var filter repository.ArticleFilter
	query := r.URL.Query()

	filter.Search = query.Get("q")

	if query.Get("published") == "true" {
		published := true
		filter.Published = &published
	}

	if raw := query.Get("tags"); strings.TrimSpace(raw) != "" {
		for _, tag := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

	return filter
}
