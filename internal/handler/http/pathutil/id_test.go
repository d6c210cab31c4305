package pathutil

import (
	"strings"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"uuid", "/articles/0b3c6a42-8a9f-4a44-9d2e-1f4a1c2b3d4e", "0b3c6a42-8a9f-4a44-9d2e-1f4a1c2b3d4e", false},
		{"short id", "/articles/a1", "a1", false},
		{"empty remainder", "/articles/", "", true},
		{"nested path", "/articles/abc/comments", "", true},
		{"too long", "/articles/" + strings.Repeat("x", 65), "", true},
		{"max length accepted", "/articles/" + strings.Repeat("x", 64), strings.Repeat("x", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, "/articles/")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
