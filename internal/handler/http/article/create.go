package article

import (
	"encoding/json"
	"net/http"

	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP creates a new article.
// @Summary      Create article
// @Description  Creates a new article from a validated payload. The server assigns the ID and timestamps.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body object true "Article payload (title, content, excerpt, published, tags)"
// @Success      201 {object} respond.Body "Created article"
// @Failure      400 {object} respond.ErrorBody "Validation failure with field-level details"
// @Failure      500 {object} respond.ErrorBody "Server error"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Excerpt   string   `json:"excerpt"`
		Published bool     `json:"published"`
		Tags      []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, nil, respond.NewAPIError(
			http.StatusBadRequest,
			respond.CodeValidationError,
			"invalid JSON payload",
			nil,
		))
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Published: req.Published,
		Tags:      req.Tags,
	})
	if err != nil {
		respond.Error(w, nil, err)
		return
	}

	articlesCreatedTotal.Inc()

	respond.JSON(w, http.StatusCreated, respond.Body{
		Success: true,
		Data:    fromEntity(art),
		Message: "article created successfully",
	})
}
