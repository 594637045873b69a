// Package main is the entry point of the document API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/sahilbrid/nyaay-saathi/internal/adapters/http"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/handlers"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/middleware"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/browser"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/pdf"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/storage"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/templates"
	"github.com/sahilbrid/nyaay-saathi/internal/app"
	"github.com/sahilbrid/nyaay-saathi/internal/app/export"
	"github.com/sahilbrid/nyaay-saathi/internal/app/session"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/catalog"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/health"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/httpclient"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/telemetry"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[storage.Store](injector)
	chrome := do.MustInvoke[*browser.Chrome](injector)
	registry.Register(store)
	registry.Register(chrome)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := server.Run(ctx)
	if serveErr != nil {
		logger.Error("http server stopped", slog.Any("error", serveErr))
	}

	if err := chrome.Close(); err != nil {
		logger.Error("browser shutdown error", slog.Any("error", err))
	}
	if err := store.Close(); err != nil {
		logger.Error("storage shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return serveErr
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*catalog.Catalog, error) {
		return catalog.Load(category.Default())
	})

	do.Provide(injector, func(_ do.Injector) (storage.Store, error) {
		return storage.Open(context.Background(), cfg.Storage, logger)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "chrome-devtools", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*browser.Chrome, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return browser.New(cfg.Browser, client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*export.Exporter, error) {
		chrome := do.MustInvoke[*browser.Chrome](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		opts := export.Options{PageWidthPx: cfg.Export.PageWidthPx, ScaleFactor: cfg.Export.ScaleFactor}
		return export.New(chrome, pdf.NewAssembler(), chrome, opts, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Renderer, error) {
		c := do.MustInvoke[*catalog.Catalog](i)
		return templates.New(c,
			templates.WithLogger(logger),
			templates.WithPageWidth(cfg.Export.PageWidthPx),
		)
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		store := do.MustInvoke[storage.Store](i)
		c := do.MustInvoke[*catalog.Catalog](i)
		renderer := do.MustInvoke[ports.Renderer](i)
		exporter := do.MustInvoke[*export.Exporter](i)
		return app.NewDocumentService(c, session.NewManager(store, logger), renderer, exporter, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		svc := do.MustInvoke[ports.DocumentService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			handlers.NewCategoryHandler(svc),
			handlers.NewSessionHandler(svc),
			handlers.NewDocumentHandler(svc),
			handlers.NewHealthHandler(registry),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Session(),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
