package entity_test

import (
	"strings"
	"testing"

	"article-api/internal/domain/entity"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantOK   bool
		wantNorm string
	}{
		{"plain title", "Hello World", true, "Hello World"},
		{"trims whitespace", "  padded  ", true, "padded"},
		{"empty", "", false, ""},
		{"whitespace only", "   ", false, ""},
		{"exactly max length", strings.Repeat("a", 255), true, strings.Repeat("a", 255)},
		{"one over max length", strings.Repeat("a", 256), false, ""},
		{"multibyte within bounds", strings.Repeat("あ", 255), true, strings.Repeat("あ", 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := entity.ValidateTitle(tt.title)
			if tt.wantOK {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				if got != tt.wantNorm {
					t.Errorf("normalized title = %q, want %q", got, tt.wantNorm)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			if verr.Field != "title" {
				t.Errorf("field = %q, want title", verr.Field)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantOK  bool
	}{
		{"nine chars rejected", strings.Repeat("x", 9), false},
		{"ten chars accepted", strings.Repeat("x", 10), true},
		{"max length accepted", strings.Repeat("x", 50000), true},
		{"over max rejected", strings.Repeat("x", 50001), false},
		{"multibyte counted as runes", strings.Repeat("あ", 10), true},
		{"whitespace is significant", "         x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := entity.ValidateContent(tt.content)
			if tt.wantOK && verr != nil {
				t.Errorf("unexpected error: %v", verr)
			}
			if !tt.wantOK && verr == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateExcerpt(t *testing.T) {
	if verr := entity.ValidateExcerpt(""); verr != nil {
		t.Errorf("empty excerpt should be valid: %v", verr)
	}
	if verr := entity.ValidateExcerpt(strings.Repeat("e", 500)); verr != nil {
		t.Errorf("500-char excerpt should be valid: %v", verr)
	}
	if verr := entity.ValidateExcerpt(strings.Repeat("e", 501)); verr == nil {
		t.Error("501-char excerpt should be rejected")
	}
}

func TestValidateTags(t *testing.T) {
	t.Run("trims each tag", func(t *testing.T) {
		tags, errs := entity.ValidateTags([]string{" go ", "http"})
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if tags[0] != "go" || tags[1] != "http" {
			t.Errorf("tags = %v, want [go http]", tags)
		}
	})

	t.Run("empty tag after trim is a violation", func(t *testing.T) {
		_, errs := entity.ValidateTags([]string{"go", "   "})
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %d", len(errs))
		}
		if errs[0].Field != "tags[1]" {
			t.Errorf("field = %q, want tags[1]", errs[0].Field)
		}
	})

	t.Run("more than ten tags rejected", func(t *testing.T) {
		tags := make([]string, 11)
		for i := range tags {
			tags[i] = "t"
		}
		_, errs := entity.ValidateTags(tags)
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %d", len(errs))
		}
		if errs[0].Field != "tags" {
			t.Errorf("field = %q, want tags", errs[0].Field)
		}
	})

	t.Run("exactly ten tags accepted", func(t *testing.T) {
		tags := make([]string, 10)
		for i := range tags {
			tags[i] = "t"
		}
		if _, errs := entity.ValidateTags(tags); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})
}

func TestValidationErrorsOrNil(t *testing.T) {
	var errs entity.ValidationErrors
	if errs.OrNil() != nil {
		t.Error("empty aggregate should be nil error")
	}
	errs.Add("title", "title is required")
	if errs.OrNil() == nil {
		t.Error("non-empty aggregate should be a non-nil error")
	}
	if !strings.Contains(errs.Error(), "title is required") {
		t.Errorf("message %q should mention the violation", errs.Error())
	}
}
