// Package memory provides an in-memory implementation of the repository contracts.
// The store is process-local state: it is seeded at startup and discarded at
// process end. A single RWMutex serializes mutations while allowing reads to
// run concurrently, preserving the single-writer invariant the use cases rely on.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// ArticleRepo is an in-memory article store.
// The zero value is not usable; construct with NewArticleRepo.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles []*entity.Article
}

// NewArticleRepo creates an empty in-memory article store.
func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{articles: make([]*entity.Article, 0)}
}

// List returns filtered articles sorted by CreatedAt descending.
// Every returned article is a deep copy, so callers can never mutate stored state.
func (r *ArticleRepo) List(_ context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if matches(a, filter) {
			out = append(out, a.Clone())
		}
	}

	// Newest first. Stable so insertion order breaks CreatedAt ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Count returns the number of articles matching the filter.
func (r *ArticleRepo) Count(_ context.Context, filter repository.ArticleFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, a := range r.articles {
		if matches(a, filter) {
			n++
		}
	}
	return n, nil
}

// Get retrieves an article by ID using a linear lookup.
// Returns (nil, nil) when the article does not exist.
func (r *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, nil
}

// Create appends a copy of the article to the collection.
func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.articles = append(r.articles, article.Clone())
	return nil
}

// Update replaces the stored record carrying the same ID.
// Returns entity.ErrNotFound if no such record exists.
func (r *ArticleRepo) Update(_ context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.articles {
		if a.ID == article.ID {
			r.articles[i] = article.Clone()
			return nil
		}
	}
	return entity.ErrNotFound
}

// Delete removes an article by ID.
// The boolean reports whether a record was found and removed.
func (r *ArticleRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// matches applies the filter predicates with AND semantics across kinds.
func matches(a *entity.Article, filter repository.ArticleFilter) bool {
	if filter.Published != nil && a.Published != *filter.Published {
		return false
	}
	if len(filter.Tags) > 0 && !a.HasAnyTag(filter.Tags) {
		return false
	}
	if filter.Search != "" && !containsFold(a, filter.Search) {
		return false
	}
	return true
}

// containsFold reports whether the search term appears, case-insensitively,
// in the article's title, content, or excerpt.
func containsFold(a *entity.Article, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), q) {
		return true
	}
	return a.Excerpt != "" && strings.Contains(strings.ToLower(a.Excerpt), q)
}
