// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for creating, listing, searching, updating, and deleting articles.
package article

import (
	"time"

	"article-api/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        string    `json:"id" example:"0b3c6a42-9c8f-4f71-b7a4-2f2f3f9be111"`
	Title     string    `json:"title" example:"Introduction to Next.js 15"`
	Content   string    `json:"content" example:"Next.js 15 ships a number of improvements..."`
	Excerpt   string    `json:"excerpt,omitempty" example:"Discover what is new in Next.js 15"`
	Published bool      `json:"published" example:"true"`
	Tags      []string  `json:"tags" example:"nextjs,react"`
	CreatedAt time.Time `json:"createdAt" example:"2025-10-26T12:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-10-26T12:00:00Z"`
}

// SearchStats summarizes a quick-search result set.
type SearchStats struct {
	Total    int64  `json:"total"`    // Matches across the whole collection
	Returned int    `json:"returned"` // Records actually returned (capped)
	Query    string `json:"query"`    // The trimmed query that was executed
}

// fromEntity converts a domain article to its transfer representation.
func fromEntity(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Excerpt:   a.Excerpt,
		Published: a.Published,
		Tags:      tags,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// fromEntities converts a slice of domain articles, preserving order.
// The result is never nil so it marshals as [] rather than null.
func fromEntities(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, fromEntity(a))
	}
	return out
}
