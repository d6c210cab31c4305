package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"article-api/internal/domain/entity"
	"article-api/internal/infra/adapter/persistence/memory"
	"article-api/internal/repository"
)

// failingRepo always errors, simulating a broken store.
type failingRepo struct{}

func (failingRepo) List(context.Context, repository.ArticleFilter) ([]*entity.Article, error) {
	return nil, errors.New("store down")
}
func (failingRepo) Count(context.Context, repository.ArticleFilter) (int64, error) {
	return 0, errors.New("store down")
}
func (failingRepo) Get(context.Context, string) (*entity.Article, error) {
	return nil, errors.New("store down")
}
func (failingRepo) Create(context.Context, *entity.Article) error { return errors.New("store down") }
func (failingRepo) Update(context.Context, *entity.Article) error { return errors.New("store down") }
func (failingRepo) Delete(context.Context, string) (bool, error) {
	return false, errors.New("store down")
}

func TestHealthHandlerHealthy(t *testing.T) {
	repo := memory.NewArticleRepo()
	repo.Seed()
	h := &HealthHandler{Repo: repo, Version: "test"}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q", resp.Version)
	}
	check, ok := resp.Checks["store"]
	if !ok || check.Status != "healthy" {
		t.Errorf("store check = %+v", check)
	}
}

func TestHealthHandlerUnhealthyStore(t *testing.T) {
	h := &HealthHandler{Repo: failingRepo{}, Version: "test"}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestHealthHandlerNoRepo(t *testing.T) {
	h := &HealthHandler{Version: "test"}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	ready := &ReadyHandler{Repo: memory.NewArticleRepo()}
	rr := httptest.NewRecorder()
	ready.ServeHTTP(rr, httptest.NewRequest("GET", "/ready", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("ready: status = %d", rr.Code)
	}

	notReady := &ReadyHandler{Repo: failingRepo{}}
	rr = httptest.NewRecorder()
	notReady.ServeHTTP(rr, httptest.NewRequest("GET", "/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("failing store: status = %d, want 503", rr.Code)
	}
}

func TestLiveHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	LiveHandler{}.ServeHTTP(rr, httptest.NewRequest("GET", "/live", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
