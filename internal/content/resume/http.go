// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package resume

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhngo/folio/internal/platform/middleware"
	requestutil "github.com/minhngo/folio/internal/platform/request"
	"github.com/minhngo/folio/internal/platform/respond"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the résumé endpoints. The latest revision is public;
// updating and browsing history are admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.latest)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Put("/", handler.update)
		r.Delete("/", handler.deleteLatest)
		r.Get("/history", handler.history)
		r.Get("/history/{id}", handler.revision)
	})

	return router
}

func (handler *Handler) latest(writer http.ResponseWriter, request *http.Request) {
	revision, err := handler.service.Latest(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, revision)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var document Document
	if err := requestutil.DecodeJSON(request, &document); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	revision, err := handler.service.Update(request.Context(), document)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, revision)
}

func (handler *Handler) deleteLatest(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteLatest(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) history(writer http.ResponseWriter, request *http.Request) {
	revisions, err := handler.service.History(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if revisions == nil {
		revisions = []*Revision{}
	}
	respond.OK(writer, revisions)
}

func (handler *Handler) revision(writer http.ResponseWriter, request *http.Request) {
	revision, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, revision)
}
