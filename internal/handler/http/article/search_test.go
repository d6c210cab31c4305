package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type searchEnvelope struct {
	Success bool `json:"success"`
	Data    []struct {
		Title     string `json:"title"`
		Published bool   `json:"published"`
	} `json:"data"`
	Message string `json:"message"`
	Stats   *struct {
		Total    int64  `json:"total"`
		Returned int    `json:"returned"`
		Query    string `json:"query"`
	} `json:"stats"`
}

func runSearch(t *testing.T, mux *http.ServeMux, query string) searchEnvelope {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/articles/search?q="+query, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var env searchEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func TestSearchFindsPublishedArticles(t *testing.T) {
	mux := seededMux(t)

	env := runSearch(t, mux, "ty")
	if !env.Success {
		t.Error("success = false")
	}
	if len(env.Data) != 1 || env.Data[0].Title != "TypeScript for Beginners" {
		t.Fatalf("unexpected matches: %+v", env.Data)
	}
	if env.Stats == nil {
		t.Fatal("missing stats")
	}
	if env.Stats.Total != 1 || env.Stats.Returned != 1 || env.Stats.Query != "ty" {
		t.Errorf("stats = %+v", env.Stats)
	}
}

func TestSearchExcludesUnpublished(t *testing.T) {
	mux := seededMux(t)

	// "draft" only appears in the unpublished sample.
	env := runSearch(t, mux, "draft")
	if len(env.Data) != 0 {
		t.Fatalf("unpublished article leaked into search: %+v", env.Data)
	}
	if env.Stats == nil || env.Stats.Total != 0 {
		t.Errorf("stats = %+v, want zero total", env.Stats)
	}
}

func TestSearchShortQuery(t *testing.T) {
	mux := seededMux(t)

	for _, q := range []string{"", "a", "%20%20a%20%20"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest("GET", "/articles/search?q="+q, nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("q=%q: status = %d, want 200", q, rr.Code)
		}

		var env searchEnvelope
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !env.Success {
			t.Errorf("q=%q: success = false", q)
		}
		if len(env.Data) != 0 {
			t.Errorf("q=%q: expected no data", q)
		}
		if env.Message == "" {
			t.Errorf("q=%q: expected explanatory message", q)
		}
		if env.Stats != nil {
			t.Errorf("q=%q: short query carries no stats", q)
		}
	}
}

func TestSearchCapsAtTenResults(t *testing.T) {
	mux := seededMux(t)

	// Add 15 published articles that all match the same term.
	for i := 0; i < 15; i++ {
		rr := doJSON(t, mux, "POST", "/articles",
			`{"title":"Common topic","content":"Shared content for capping.","published":true}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("fixture create failed: %d", rr.Code)
		}
	}

	env := runSearch(t, mux, "common+topic")
	if env.Stats == nil {
		t.Fatal("missing stats")
	}
	if env.Stats.Total != 15 {
		t.Errorf("total = %d, want 15", env.Stats.Total)
	}
	if len(env.Data) != 10 || env.Stats.Returned != 10 {
		t.Errorf("returned = %d (stats %d), want capped at 10", len(env.Data), env.Stats.Returned)
	}
}
