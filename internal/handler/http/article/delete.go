package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc artUC.Service }

// ServeHTTP deletes an article.
// @Summary      Delete article
// @Description  Removes the article with the given ID. Hard delete, no tombstone.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} respond.Body "Deletion confirmation"
// @Failure      400 {object} respond.ErrorBody "Invalid article ID"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, nil, respond.NewAPIError(
			http.StatusBadRequest, respond.CodeValidationError, "invalid article id", nil))
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, nil, err)
		return
	}

	respond.JSON(w, http.StatusOK, respond.Body{
		Success: true,
		Message: "article deleted successfully",
	})
}
