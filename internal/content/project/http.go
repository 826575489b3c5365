// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/middleware"
	requestutil "github.com/minhngo/folio/internal/platform/request"
	"github.com/minhngo/folio/internal/platform/respond"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/pagination"
	"github.com/minhngo/folio/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the project endpoints. Reads are public but scoped to
// published entries for non-admins; writes are admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

type projectRequest struct {
	Title        *string   `json:"title"`
	Slug         *string   `json:"slug"`
	Description  *string   `json:"description"`
	Content      *string   `json:"content"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	ImageURL     *string   `json:"image_url"`
	Featured     *bool     `json:"featured"`
	Published    *bool     `json:"published"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := filterFromRequest(request)

	projects, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if projects == nil {
		projects = []*Project{}
	}

	respond.Paginated(writer, projects, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !found.Published && !isAdmin(request) {
		respond.Error(writer, request, apperr.NotFound("Project not found"))
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input projectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Title == nil {
		respond.Error(writer, request, validate.RequiredError(FieldTitle, "is required"))
		return
	}
	if input.Description == nil {
		respond.Error(writer, request, validate.RequiredError(FieldDescription, "is required"))
		return
	}

	createInput := CreateInput{
		Title:       *input.Title,
		Slug:        pointer.Val(input.Slug),
		Description: *input.Description,
		Content:     pointer.Val(input.Content),
		GithubURL:   pointer.Val(input.GithubURL),
		LiveURL:     pointer.Val(input.LiveURL),
		ImageURL:    pointer.Val(input.ImageURL),
		Featured:    pointer.Val(input.Featured),
		Published:   pointer.Val(input.Published),
	}
	if input.Technologies != nil {
		createInput.Technologies = *input.Technologies
	}

	created, err := handler.service.Create(request.Context(), createInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input projectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updateInput := UpdateInput{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Content:     input.Content,
		GithubURL:   input.GithubURL,
		LiveURL:     input.LiveURL,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		Published:   input.Published,
	}
	if input.Technologies != nil {
		updateInput.Technologies = *input.Technologies
	}

	updated, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), updateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// filterFromRequest builds the listing filter from query parameters,
// clamping visibility for non-admin callers.
func filterFromRequest(request *http.Request) Filter {
	query := request.URL.Query()

	filter := Filter{
		Search:   query.Get("search"),
		OrderBy:  query.Get("order_by"),
		OrderDir: query.Get("order_dir"),
	}

	switch query.Get("featured") {
	case "true":
		filter.Featured = pointer.To(true)
	case "false":
		filter.Featured = pointer.To(false)
	}

	if isAdmin(request) {
		switch query.Get("published") {
		case "true":
			filter.Published = pointer.To(true)
		case "false":
			filter.Published = pointer.To(false)
		}
	} else {
		filter.Published = pointer.To(true)
	}

	return filter
}

func isAdmin(request *http.Request) bool {
	caller := requestutil.Caller(request)
	return caller != nil && caller.IsAdmin()
}
