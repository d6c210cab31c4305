package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP fetches a single article.
// @Summary      Get article by ID
// @Description  Returns the article with the given ID.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} respond.Body "Article"
// @Failure      400 {object} respond.ErrorBody "Invalid article ID"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, nil, respond.NewAPIError(
			http.StatusBadRequest, respond.CodeValidationError, "invalid article id", nil))
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, nil, err)
		return
	}

	respond.JSON(w, http.StatusOK, respond.Body{Success: true, Data: fromEntity(art)})
}
