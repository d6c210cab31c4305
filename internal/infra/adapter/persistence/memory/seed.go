package memory

import (
	"time"

	"github.com/google/uuid"

	"article-api/internal/domain/entity"
)

// Seed populates the store with three sample articles: two published posts and
// one unpublished draft. CreatedAt timestamps are staggered one hour apart so
// the newest-first ordering is deterministic.
//
// The collection is re-seeded on every process start; there is no persistence.
func (r *ArticleRepo) Seed() {
	now := time.Now()

	samples := []*entity.Article{
		{
			Title:     "Introduction to Next.js 15",
			Content:   "Next.js 15 ships a number of improvements to the App Router, caching defaults and the development server. This article walks through the changes that matter for day-to-day work.",
			Excerpt:   "Discover what is new in Next.js 15",
			Published: true,
			Tags:      []string{"nextjs", "react", "javascript"},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			Title:     "TypeScript for Beginners",
			Content:   "TypeScript is a superset of JavaScript that adds static typing. We cover the basic types, interfaces and the compiler options you need to get started.",
			Excerpt:   "Learn the basics of TypeScript",
			Published: true,
			Tags:      []string{"typescript", "javascript"},
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			Title:     "Draft article",
			Content:   "This is a draft that has not been published yet.",
			Published: false,
			Tags:      []string{"draft"},
			CreatedAt: now,
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range samples {
		a.ID = uuid.NewString()
		a.UpdatedAt = a.CreatedAt
		r.articles = append(r.articles, a)
	}
}
