package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"article-api/internal/handler/http/requestid"
)

func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.ForceFlush(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return exporter
}

func TestMiddlewareCreatesSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /articles" {
		t.Errorf("span name = %q", span.Name)
	}

	var gotStatus, gotSize int64
	var gotRoute string
	for _, attr := range span.Attributes {
		switch attr.Key {
		case "http.status_code":
			gotStatus = attr.Value.AsInt64()
		case "http.response_size":
			gotSize = attr.Value.AsInt64()
		case "http.route":
			gotRoute = attr.Value.AsString()
		}
	}
	if gotStatus != 200 {
		t.Errorf("http.status_code = %d", gotStatus)
	}
	if gotSize != 2 {
		t.Errorf("http.response_size = %d, want 2", gotSize)
	}
	if gotRoute != "/articles" {
		t.Errorf("http.route = %q", gotRoute)
	}
}

func TestMiddlewareNamesSpanAfterRoute(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/articles/abc-123", nil))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "GET /articles/:id" {
		t.Errorf("span name = %q, the article ID must not appear", spans[0].Name)
	}

	var gotTarget string
	for _, attr := range spans[0].Attributes {
		if attr.Key == "http.target" {
			gotTarget = attr.Value.AsString()
		}
	}
	if gotTarget != "/articles/abc-123" {
		t.Errorf("http.target = %q, want the raw path", gotTarget)
	}
}

func TestMiddlewareRecordsRequestID(t *testing.T) {
	exporter := setupExporter(t)

	handler := requestid.Middleware(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set(requestid.Header, "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	var gotID string
	for _, attr := range spans[0].Attributes {
		if attr.Key == "request_id" {
			gotID = attr.Value.AsString()
		}
	}
	if gotID != "req-42" {
		t.Errorf("request_id attribute = %q", gotID)
	}
}

func TestMiddlewareSetsTraceIDHeader(t *testing.T) {
	setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Header().Get("X-Trace-Id") == "" {
		t.Error("missing X-Trace-Id response header")
	}
}

func TestMiddlewareMarksServerErrors(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	var flagged bool
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" && attr.Value.AsBool() {
			flagged = true
		}
	}
	if !flagged {
		t.Error("5xx response did not mark the span as error")
	}
}

func TestStartOpensChildSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, span := Start(r.Context(), "article.search")
		span.End()
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/articles/search", nil))

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	// Syncer exports spans as they end, so the child comes first.
	child, server := spans[0], spans[1]
	if child.Name != "article.search" {
		t.Errorf("child span name = %q", child.Name)
	}
	if child.Parent.SpanID() != server.SpanContext.SpanID() {
		t.Error("child span is not parented to the request span")
	}
}
