// Package repository defines the persistence contracts used by the use case layer.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"article-api/internal/domain/entity"
)

// ArticleFilter contains optional predicates for narrowing an article listing.
// Predicates of different kinds combine with AND semantics; within the tag set
// an article matches when it carries at least one of the tags (OR semantics).
type ArticleFilter struct {
	Published *bool    // Optional: exact match on the published flag
	Tags      []string // Optional: match articles carrying any of these tags
	Search    string   // Optional: case-insensitive substring over title, content, excerpt
}

// IsZero reports whether no predicate is set.
func (f ArticleFilter) IsZero() bool {
	return f.Published == nil && len(f.Tags) == 0 && f.Search == ""
}

// ArticleRepository is the storage contract for articles.
//
// List returns filtered articles sorted by CreatedAt descending (newest first).
// Implementations must return defensive copies: callers may mutate the results
// without affecting stored state.
type ArticleRepository interface {
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	// Count returns the number of articles matching the filter.
	// Equals len(List(ctx, filter)) for every filter.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id string) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	// Update replaces the stored record with the same ID.
	// Returns entity.ErrNotFound if no such record exists.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article by ID.
	// The boolean reports whether a record was found and removed.
	Delete(ctx context.Context, id string) (bool, error)
}
