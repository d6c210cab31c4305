// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a blog article entity in the system.
// It contains the article's content, publication state, and tag metadata.
type Article struct {
	ID        string
	Title     string
	Content   string
	Excerpt   string
	Published bool
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the article.
// The tag slice is copied so mutations on the clone never reach the original.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	if a.Tags != nil {
		c.Tags = make([]string, len(a.Tags))
		copy(c.Tags, a.Tags)
	}
	return &c
}

// HasAnyTag reports whether the article carries at least one of the given tags.
// Tag comparison is exact (case-sensitive).
func (a *Article) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range a.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
