// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts W3C Trace Context from incoming requests,
// opens a server span named after the normalized route, and echoes the
// trace ID back to callers via the X-Trace-Id header. Without a
// configured exporter the spans are no-ops, so the middleware is safe to
// keep in the chain unconditionally.
//
// Handlers can carve their own work out of the request span:
//
//	ctx, span := tracing.Start(r.Context(), "article.search")
//	defer span.End()
package tracing
