package article

import (
	"log/slog"
	"net/http"

	"article-api/internal/common/pagination"
	artUC "article-api/internal/usecase/article"
)

// Middleware wraps a handler, typically to apply rate limiting to the
// quick search route.
type Middleware func(http.Handler) http.Handler

// Register registers all article-related HTTP handlers with the given mux.
// It sets up routes for listing, searching, creating, updating, and deleting articles.
// searchLimit, when non-nil, is applied to the quick search route only.
func Register(mux *http.ServeMux, svc artUC.Service, paginationCfg pagination.Config, logger *slog.Logger, searchLimit Middleware) {
	var search http.Handler = SearchHandler{Svc: svc, Logger: logger}
	if searchLimit != nil {
		search = searchLimit(search)
	}

	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/search", search)
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PUT    /articles/", UpdateHandler{svc})
	mux.Handle("DELETE /articles/", DeleteHandler{svc})
}
