package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/articles", "/articles"},
		{"/articles/0b3c6a42-8a9f-4a44-9d2e-1f4a1c2b3d4e", "/articles/:id"},
		{"/articles/abc", "/articles/:id"},
		{"/articles/abc/", "/articles/:id"},
		{"/articles/abc?page=1", "/articles/:id"},
		{"/articles/search", "/articles/search"},
		{"/articles/search/", "/articles/search"},
		{"/articles/search?q=go", "/articles/search"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/", "/"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
