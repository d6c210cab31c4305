// Package observability provides production-grade observability infrastructure
// including structured logging and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - tracing: OpenTelemetry tracing integration
//
// Prometheus metrics live next to the code they measure: HTTP and business
// metrics in the handler packages, pagination metrics in the pagination
// package.
//
// Example usage:
//
//	import "article-api/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//	}
package observability
