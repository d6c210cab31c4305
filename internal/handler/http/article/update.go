package article

import (
	"encoding/json"
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP applies a partial update to an article.
// @Summary      Update article
// @Description  Merges the supplied fields into the stored article. Omitted fields keep their value; updatedAt is always refreshed.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "Article ID"
// @Param        article body object true "Partial article payload"
// @Success      200 {object} respond.Body "Updated article"
// @Failure      400 {object} respond.ErrorBody "Validation failure with field-level details"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, nil, respond.NewAPIError(
			http.StatusBadRequest, respond.CodeValidationError, "invalid article id", nil))
		return
	}

	// Pointer fields distinguish "omitted" from "explicitly set to zero".
	var req struct {
		Title     *string   `json:"title"`
		Content   *string   `json:"content"`
		Excerpt   *string   `json:"excerpt"`
		Published *bool     `json:"published"`
		Tags      *[]string `json:"tags"`
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

	art, err := h.Svc.Update(r.Context(), id, artUC.UpdateInput{
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

	respond.JSON(w, http.StatusOK, respond.Body{
		Success: true,
		Data:    fromEntity(art),
		Message: "article updated successfully",
	})
}
