package article

import (
	"log/slog"
	"net/http"
	"time"

	"article-api/internal/common/pagination"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	artUC "article-api/internal/usecase/article"
)

type ListHandler struct {
	Svc           artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists articles with filtering and pagination.
// @Summary      List articles (paginated)
// @Description  Returns articles filtered by published flag, tags and free-text search, newest first, one page at a time.
// @Tags         articles
// @Produce      json
// @Param        page       query    int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit      query    int     false  "Items per page" default(10) minimum(1) maximum(100)
// @Param        q          query    string  false  "Free-text search over title, content and excerpt"
// @Param        published  query    string  false  "Pass the literal value true to list published articles only"
// @Param        tags       query    string  false  "Comma-separated tag list; articles matching any tag are returned"
// @Success      200 {object} pagination.Response[DTO] "Paginated article list"
// @Failure      400 {object} respond.ErrorBody "Invalid pagination parameters"
// @Failure      500 {object} respond.ErrorBody "Server error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.Error(w, logger, respond.NewAPIError(
			http.StatusBadRequest,
			respond.CodeValidationError,
			"invalid pagination parameters",
			err.Error(),
		))
		return
	}

	filter := parseFilter(r)

	logger.Info("paginated article list request",
		"page", params.Page,
		"limit", params.Limit,
		"filtered", !filter.IsZero())

	result, err := h.Svc.Paginate(ctx, params, filter)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("store")
		respond.Error(w, logger, err)
		return
	}

	response := pagination.NewResponse(fromEntities(result.Data), result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, result.Pagination.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("paginated response",
		"page", result.Pagination.Page,
		"limit", result.Pagination.Limit,
		"returned_count", len(response.Data),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}
