package entity

import (
	"fmt"
	"strings"

	"article-api/internal/utils/text"
)

// Field bounds for article payloads. Lengths are counted in runes, not bytes,
// so multi-byte titles and contents are not penalized.
const (
	TitleMaxLen   = 255
	ContentMinLen = 10
	ContentMaxLen = 50000
	ExcerptMaxLen = 500
	MaxTags       = 10
)

// ValidateTitle checks a title against the domain bounds.
// The title is trimmed before the length check; the trimmed value is returned
// so callers store the normalized form.
func ValidateTitle(title string) (string, *ValidationError) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return trimmed, &ValidationError{Field: "title", Message: "title is required"}
	}
	if text.CountRunes(trimmed) > TitleMaxLen {
		return trimmed, &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", TitleMaxLen),
		}
	}
	return trimmed, nil
}

// ValidateContent checks article content against the domain bounds.
// Content is not trimmed: leading and trailing whitespace is significant.
func ValidateContent(content string) *ValidationError {
	n := text.CountRunes(content)
	if n < ContentMinLen {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at least %d characters", ContentMinLen),
		}
	}
	if n > ContentMaxLen {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must not exceed %d characters", ContentMaxLen),
		}
	}
	return nil
}

// ValidateExcerpt checks an optional excerpt against the domain bounds.
func ValidateExcerpt(excerpt string) *ValidationError {
	if text.CountRunes(excerpt) > ExcerptMaxLen {
		return &ValidationError{
			Field:   "excerpt",
			Message: fmt.Sprintf("excerpt must not exceed %d characters", ExcerptMaxLen),
		}
	}
	return nil
}

// ValidateTags checks a tag list against the domain bounds.
// Each tag is trimmed before being checked; a tag that is empty after trimming
// is a violation, not silently dropped. The normalized list is returned.
// All violations are reported, one per offending entry.
func ValidateTags(tags []string) ([]string, ValidationErrors) {
	var errs ValidationErrors
	if len(tags) > MaxTags {
		errs.Add("tags", fmt.Sprintf("maximum %d tags allowed", MaxTags))
	}
	normalized := make([]string, len(tags))
	for i, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			errs.Add(fmt.Sprintf("tags[%d]", i), "tag must not be empty")
		}
		normalized[i] = trimmed
	}
	return normalized, errs
}
