package article

import (
	"log/slog"
	"net/http"
	"strings"

	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/tracing"
	artUC "article-api/internal/usecase/article"
	"article-api/internal/utils/text"
)

// minSearchQueryLen is the shortest query the quick search executes.
// A shorter query returns an empty success payload with an explanatory
// message, not a validation error: callers wire this endpoint to
// as-you-type search boxes, and erroring on the first keystroke would
// make every search session start with a failure.
const minSearchQueryLen = 2

type SearchHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP runs the quick search over published articles.
// @Summary      Quick search
// @Description  Case-insensitive substring search over title, content and excerpt of published articles. Returns at most 10 matches plus match statistics.
// @Tags         articles
// @Produce      json
// @Param        q query string true "Search term (minimum 2 characters after trimming)"
// @Success      200 {object} respond.Body "Matches and stats, or an empty result with a message for short queries"
// @Failure      500 {object} respond.ErrorBody "Server error"
// @Router       /articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if text.CountRunes(query) < minSearchQueryLen {
		recordSearch("short_query")
		respond.JSON(w, http.StatusOK, respond.Body{
			Success: true,
			Data:    []DTO{},
			Message: "query too short (minimum 2 characters)",
		})
		return
	}

	ctx, span := tracing.Start(ctx, "article.search")
	defer span.End()

	result, err := h.Svc.SearchPublished(ctx, query)
	if err != nil {
		logger.Error("quick search failed", "error", err.Error(), "query", query)
		respond.Error(w, logger, err)
		return
	}

	dtos := fromEntities(result.Data)
	if result.Total > 0 {
		recordSearch("hit")
	} else {
		recordSearch("miss")
	}
	logger.Info("quick search",
		"query", query,
		"total", result.Total,
		"returned", len(dtos))

	respond.JSON(w, http.StatusOK, respond.Body{
		Success: true,
		Data:    dtos,
		Stats: SearchStats{
			Total:    result.Total,
			Returned: len(dtos),
			Query:    result.Query,
		},
	})
}
