package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/requestid"
	"article-api/internal/handler/http/responsewriter"
)

// tracer is shared by the HTTP middleware and the child spans opened
// through Start.
var tracer = otel.Tracer("article-api")

// Start opens a child span of whatever span is on ctx. Handlers use it
// to separate their own work from the surrounding HTTP span.
func Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// Middleware opens a server span per request. Inbound W3C trace context
// is honored and the trace ID is echoed to the caller via X-Trace-Id.
// Spans are named after the normalized route ("GET /articles/:id"), so
// individual article IDs do not fan out into distinct span names.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		route := pathutil.NormalizePath(r.URL.Path)
		ctx, span := tracer.Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())

		rec := responsewriter.Record(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.target", r.URL.Path),
			attribute.Int("http.status_code", rec.Status()),
			attribute.Int64("http.response_size", rec.Bytes()),
		)
		if id := requestid.FromContext(r.Context()); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}
		if rec.ServerError() {
			span.SetAttributes(attribute.Bool("error", true))
		}
	})
}
