package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"article-api/internal/common/pagination"
	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// maxQuickSearchResults caps the number of records returned by the
// quick-search endpoint, regardless of how many articles match.
const maxQuickSearchResults = 10

// CreateInput represents the input parameters for creating a new article.
// Zero values match the field defaults (published=false, no tags).
type CreateInput struct {
	Title     string
	Content   string
	Excerpt   string
	Published bool
	Tags      []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values are left untouched (merge semantics); a non-nil
// pointer means the field was explicitly set, even to its zero value.
type UpdateInput struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Published *bool
	Tags      *[]string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates storage to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// SearchResult represents the result of a quick search.
// Data holds at most maxQuickSearchResults records; Total counts every match.
type SearchResult struct {
	Data  []*entity.Article
	Total int64
	Query string
}

// List retrieves articles matching the filter, newest first.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Count returns the number of articles matching the filter.
func (s *Service) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}

// Paginate retrieves one page of the filtered, newest-first listing.
//
// The requested page is clamped into [1, totalPages]: a page beyond the last
// falls back to the last page, never to an empty one, and the metadata carries
// the clamped page number. An empty result still reports totalPages = 1.
func (s *Service) Paginate(ctx context.Context, params pagination.Params, filter repository.ArticleFilter) (*PaginatedResult, error) {
	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	total := int64(len(articles))
	totalPages := pagination.CalculateTotalPages(total, params.Limit)
	page := pagination.ClampPage(params.Page, totalPages)

	offset := pagination.CalculateOffset(page, params.Limit)
	end := offset + params.Limit
	if offset > len(articles) {
		offset = len(articles)
	}
	if end > len(articles) {
		end = len(articles)
	}

	return &PaginatedResult{
		Data: articles[offset:end],
		Pagination: pagination.Metadata{
			Page:       page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is empty.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create creates a new article with the provided input.
// It validates every field and reports all violations together.
// The server assigns a fresh ID and sets CreatedAt == UpdatedAt.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	var errs entity.ValidationErrors

	title, verr := entity.ValidateTitle(in.Title)
	if verr != nil {
		errs = append(errs, *verr)
	}
	if verr := entity.ValidateContent(in.Content); verr != nil {
		errs = append(errs, *verr)
	}
	if verr := entity.ValidateExcerpt(in.Excerpt); verr != nil {
		errs = append(errs, *verr)
	}
	tags, tagErrs := entity.ValidateTags(in.Tags)
	errs = append(errs, tagErrs...)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	art := &entity.Article{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Published: in.Published,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input are applied (merge semantics).
// CreatedAt is always preserved verbatim; UpdatedAt is refreshed on every
// successful update, whether or not any field actually changed.
// Returns ErrArticleNotFound if the article does not exist; the payload is
// validated before the lookup, so validation failures win over not-found.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	var errs entity.ValidationErrors
	var title string
	if in.Title != nil {
		var verr *entity.ValidationError
		title, verr = entity.ValidateTitle(*in.Title)
		if verr != nil {
			errs = append(errs, *verr)
		}
	}
	if in.Content != nil {
		if verr := entity.ValidateContent(*in.Content); verr != nil {
			errs = append(errs, *verr)
		}
	}
	if in.Excerpt != nil {
		if verr := entity.ValidateExcerpt(*in.Excerpt); verr != nil {
			errs = append(errs, *verr)
		}
	}
	var tags []string
	if in.Tags != nil {
		var tagErrs entity.ValidationErrors
		tags, tagErrs = entity.ValidateTags(*in.Tags)
		errs = append(errs, tagErrs...)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		art.Title = title
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.Excerpt != nil {
		art.Excerpt = *in.Excerpt
	}
	if in.Published != nil {
		art.Published = *in.Published
	}
	if in.Tags != nil {
		art.Tags = tags
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is empty.
// Returns ErrArticleNotFound if no article with that ID exists.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidArticleID
	}

	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !removed {
		return ErrArticleNotFound
	}
	return nil
}

// SearchPublished runs the quick search: a case-insensitive substring match
// over title, content and excerpt, restricted to published articles.
// At most maxQuickSearchResults records are returned, newest first; Total
// still counts every match.
func (s *Service) SearchPublished(ctx context.Context, query string) (*SearchResult, error) {
	published := true
	articles, err := s.Repo.List(ctx, repository.ArticleFilter{
		Published: &published,
		Search:    query,
	})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	total := int64(len(articles))
	if len(articles) > maxQuickSearchResults {
		articles = articles[:maxQuickSearchResults]
	}

	return &SearchResult{Data: articles, Total: total, Query: query}, nil
}
