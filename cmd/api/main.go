package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"article-api/internal/common/pagination"
	"article-api/internal/config"
	"article-api/internal/infra/adapter/persistence/memory"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/tracing"
	"article-api/internal/repository"

	artUC "article-api/internal/usecase/article"

	hhttp "article-api/internal/handler/http"
	harticle "article-api/internal/handler/http/article"
	"article-api/internal/handler/http/middleware"
	"article-api/internal/handler/http/requestid"

	_ "article-api/docs" // swagger docs
)

// @title           Article API
// @version         1.0
// @description     REST API for managing and searching articles.
// @description     Provides CRUD operations, filtered pagination, and quick search.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repo := memory.NewArticleRepo()
	if cfg.Store.Seed {
		repo.Seed()
		logger.Info("store seeded with sample articles")
	}

	version := getVersion()
	handler := setupServer(logger, cfg, repo, version)

	runServer(logger, cfg, handler, version)
}

// initLogger initializes the application logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from the environment.
func getVersion() string {
	if v := os.Getenv("APP_VERSION"); v != "" {
		return v
	}
	return "dev"
}

// setupServer builds the routed and middleware-wrapped HTTP handler.
func setupServer(logger *slog.Logger, cfg *config.ServerConfig, repo repository.ArticleRepository, version string) http.Handler {
	artSvc := artUC.Service{Repo: repo}

	mux := setupRoutes(logger, cfg, repo, artSvc, version)
	return applyMiddleware(logger, cfg, mux)
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	logger *slog.Logger,
	cfg *config.ServerConfig,
	repo repository.ArticleRepository,
	artSvc artUC.Service,
	version string,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/health", &hhttp.HealthHandler{Repo: repo, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{Repo: repo})
	mux.Handle("/live", hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	paginationCfg := pagination.LoadFromEnv()

	// Quick search gets its own per-IP token bucket; the endpoint is the
	// cheapest to abuse from a search-as-you-type client.
	searchLimiter := hhttp.NewRateLimiter(rate.Limit(cfg.Search.RateLimit), cfg.Search.RateBurst)
	harticle.Register(mux, artSvc, paginationCfg, logger, searchLimiter.Limit)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS -> Request ID -> Recovery -> Logging -> Body Limit -> Tracing -> Metrics
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()

	logger.Info("CORS enabled",
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
