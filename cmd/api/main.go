// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Connect to blob storage (S3-compatible).
//  6. Run database migrations (idempotent).
//  7. Wire domain services, REST, GraphQL, and public page handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/minhngo/folio/internal/api"
	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/content/upload"
	"github.com/minhngo/folio/internal/export"
	"github.com/minhngo/folio/internal/graphql"
	"github.com/minhngo/folio/internal/platform/blob"
	"github.com/minhngo/folio/internal/platform/config"
	"github.com/minhngo/folio/internal/platform/constants"
	"github.com/minhngo/folio/internal/platform/migration"
	pgstore "github.com/minhngo/folio/internal/platform/postgres"
	redisstore "github.com/minhngo/folio/internal/platform/redis"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/public"
	"github.com/minhngo/folio/internal/static"
	"github.com/minhngo/folio/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "folio"))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "folio"))
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

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Blob Storage ───────────────────────────────────────────────────
	blobs, err := blob.NewClient(startupCtx, blob.Options{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	must(log, err, "connect to blob storage")

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		constants.AuthIssuer,
		constants.AccessTokenTTL,
		constants.RefreshTokenTTL,
	)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewAttemptRepository(rdb),
		tokenService,
		log,
	)

	must(log, authService.EnsureAdmin(startupCtx, auth.BootstrapInput{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	}), "bootstrap admin account")

	categoryService := category.NewService(category.NewRepository(pool), log)
	tagService := tag.NewService(tag.NewRepository(pool), log)
	postService := post.NewService(post.NewRepository(pool), log)
	projectService := project.NewService(project.NewRepository(pool), log)
	resumeService := resume.NewService(resume.NewRepository(pool), log)
	uploadService := upload.NewService(upload.NewRepository(pool), blobs, log)
	exportService := export.NewService(
		postService, projectService, categoryService, resumeService,
		cfg.ContentDir, log,
	)

	// ── 10. GraphQL ───────────────────────────────────────────────────────
	schema, err := graphql.NewSchema(graphql.NewResolver(graphql.Services{
		Auth:       authService,
		Posts:      postService,
		Categories: categoryService,
		Tags:       tagService,
		Projects:   projectService,
		Resumes:    resumeService,
		Uploads:    uploadService,
	}))
	must(log, err, "build graphql schema")

	// ── 11. Public Pages ──────────────────────────────────────────────────
	// Pages render from the exported content tree, not the database.
	publicHandler, err := public.NewHandler(static.NewLoader(cfg.ContentDir, log), log)
	must(log, err, "parse page templates")

	// ── 12. HTTP Server ───────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Post:      post.NewHandler(postService),
		Category:  category.NewHandler(categoryService),
		Tag:       tag.NewHandler(tagService),
		Project:   project.NewHandler(projectService),
		Resume:    resume.NewHandler(resumeService),
		Upload:    upload.NewHandler(uploadService),
		Export:    export.NewHandler(exportService),
		GraphQL:   graphql.NewHandler(schema),
		Public:    publicHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 13. Graceful Shutdown ─────────────────────────────────────────────
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
