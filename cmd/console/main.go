package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"storefront-console/internal/config"
	"storefront-console/internal/database"
	"storefront-console/internal/handlers"
	"storefront-console/internal/middleware"
	"storefront-console/internal/repositories"
	"storefront-console/internal/services"
	"storefront-console/internal/view"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const auditPruneInterval = time.Hour

// main wires the console: config, the storefront backend client, the shared
// page board and the echo server. Console behaviour lives in internal/services.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := config.Load()
	log := newLogger(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("initializing storefront console",
		"addr", cfg.Address(),
		"directory", cfg.Directory.BaseURL,
		"audit", cfg.Audit.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	var (
		db           *database.DB
		auditService = services.NewDisabledAuditService()
		pinger       handlers.Pinger
	)
	if cfg.Audit.Enabled {
		var err error
		db, err = database.Initialize(cfg, log)
		if err != nil {
			log.Error("failed to initialize audit database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("failed to close database", "error", err)
			}
		}()

		auditRepo := repositories.NewAuditLogRepository(db.DB)
		auditService = services.NewAuditService(auditRepo, log)
		pinger = db

		if cfg.Audit.Retention > 0 {
			go pruneAuditLogs(ctx, auditRepo, cfg.Audit.Retention, log)
		}
	}

	consoleLogger := services.NewConsoleLogger(log)
	directory := services.NewDirectoryClient(&cfg.Directory, nil, log, metrics)
	board := view.NewBoard(metrics)

	lookup := services.NewCustomerLookupController(directory, board, consoleLogger, metrics, auditService)
	storefront := services.NewStorefrontService(directory, board, consoleLogger, metrics, auditService)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(cfg.Security)
	go limiter.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(log, registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(log))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(limiter.Middleware())

	handlers.Routes{
		Console: handlers.NewConsoleHandler(lookup, storefront, board, consoleLogger),
		Audit:   handlers.NewAuditHandler(auditService),
		Health:  handlers.NewHealthCheckHandler(pinger),
	}.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting http server", "addr", cfg.Address())

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return
	}

	log.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// pruneAuditLogs drops audit entries older than retention until ctx is done
func pruneAuditLogs(ctx context.Context, repo repositories.AuditLogRepositoryInterface, retention time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(auditPruneInterval)
	defer ticker.Stop()

	for {
		deleted, err := repo.DeleteOlderThan(retention)
		if err != nil {
			log.Error("failed to prune audit logs", "error", err)
		} else if deleted > 0 {
			log.Info("pruned audit logs", "deleted", deleted, "retention", retention.String())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
