// Copyright (c) 2026 Noveria. All rights reserved.

// Command api is the entry point for the Noveria HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to MongoDB.
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/noveria/noveria/internal/api"
	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/core/chapter"
	"github.com/noveria/noveria/internal/core/comment"
	"github.com/noveria/noveria/internal/core/discover"
	"github.com/noveria/noveria/internal/core/library"
	"github.com/noveria/noveria/internal/platform/config"
	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "noveria"))
	slog.SetDefault(log)

	log.Info("[Noveria] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "noveria"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. MongoDB ────────────────────────────────────────────────────────
	store, err := mongodb.Connect(startupCtx, cfg.DatabaseURL, cfg.DatabaseName, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongodb client")
		if cerr := store.Close(context.Background()); cerr != nil {
			log.Error("mongodb close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: func() error {
			return store.Ping(context.Background())
		},
	}, log)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	bookRepository := book.NewRepository(store)
	chapterRepository := chapter.NewRepository(store)
	commentRepository := comment.NewRepository(store)
	libraryRepository := library.NewRepository(store)
	discoverRepository := discover.NewRepository(store)

	bookService := book.NewService(bookRepository, log)
	chapterService := chapter.NewService(chapterRepository, bookRepository, log)
	commentService := comment.NewService(commentRepository, log)
	libraryService := library.NewService(libraryRepository, bookRepository, log)
	discoverService := discover.NewService(discoverRepository, bookService, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Book:      book.NewHandler(bookService, chapterService, commentService),
		Chapter:   chapter.NewHandler(chapterService),
		Comment:   comment.NewHandler(commentService),
		Library:   library.NewHandler(libraryService),
		Discover:  discover.NewHandler(discoverService),
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
