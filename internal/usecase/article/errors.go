// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying articles,
// including validation and interaction with the article repository.
package article

import (
	"fmt"

	"article-api/internal/domain/entity"
)

// Sentinel errors for article use case operations.
// Both wrap a domain sentinel so the HTTP boundary can classify them
// without depending on this package.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is typically returned when attempting to retrieve or update
	// an article that does not exist in the repository.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs are opaque non-empty strings assigned at creation.
	ErrInvalidArticleID = fmt.Errorf("%w article id", entity.ErrInvalidInput)
)
