// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/content/upload"
	"github.com/minhngo/folio/internal/export"
	"github.com/minhngo/folio/internal/platform/config"
	"github.com/minhngo/folio/internal/platform/constants"
	"github.com/minhngo/folio/internal/platform/middleware"
	"github.com/minhngo/folio/internal/public"
	"github.com/minhngo/folio/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, refresh, me).
	Auth *auth.Handler

	// Post handles the blog post catalogue.
	Post *post.Handler

	// Category handles post categories.
	Category *category.Handler

	// Tag handles post tags.
	Tag *tag.Handler

	// Project handles the portfolio entries.
	Project *project.Handler

	// Resume handles the versioned résumé document.
	Resume *resume.Handler

	// Upload handles file uploads to blob storage.
	Upload *upload.Handler

	// Export handles the content snapshot trigger.
	Export *export.Handler

	// GraphQL serves the full content API on a single endpoint.
	GraphQL http.Handler

	// Public serves the server-rendered HTML pages.
	Public *public.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, resolver middleware.CallerResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(resolver))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/posts", h.Post.Routes())
		api.Mount("/categories", h.Category.Routes())
		api.Mount("/tags", h.Tag.Routes())
		api.Mount("/projects", h.Project.Routes())
		api.Mount("/resume", h.Resume.Routes())
		api.Mount("/uploads", h.Upload.Routes())
		api.Mount("/export", h.Export.Routes())
	})

	// # GraphQL Endpoint
	// The same services behind /api/v1, exposed as a single endpoint.
	r.Handle("/api/graphql", h.GraphQL)

	// # Public Pages
	// Server-rendered HTML mounted last so API prefixes take precedence.
	r.Mount("/", h.Public.Routes())

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
