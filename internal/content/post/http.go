// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package post

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

// Handler exposes the blog post REST endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
Routes mounts the post endpoints.

Description: Reads are public but scoped — anonymous and non-admin callers
only ever see published posts. Writes require the admin role.
*/
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

// postRequest is the JSON body for create and update. Absent fields stay nil
// so partial updates can tell "not provided" from "set to zero value".
type postRequest struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	Published  *bool     `json:"published"`
	CategoryID *string   `json:"category_id"`
	TagIDs     *[]string `json:"tag_ids"`
}

/*
list handles GET /.

Query parameters: page, limit, category, tag, search, order_by, order_dir,
and published ("true"/"false", admin only).
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := filterFromRequest(request)

	posts, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if posts == nil {
		posts = []*Post{}
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /{id}. Accepts a UUID or a slug. Drafts are only visible
// to admins; everyone else gets a 404 rather than a 403 so the draft's
// existence is not leaked.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !found.Published && !isAdmin(request) {
		respond.Error(writer, request, apperr.NotFound("Post not found"))
		return
	}

	respond.OK(writer, found)
}

// create handles POST /. Admin only.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredCaller(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Title == nil {
		respond.Error(writer, request, validate.RequiredError(FieldTitle, "is required"))
		return
	}
	if input.Content == nil {
		respond.Error(writer, request, validate.RequiredError(FieldContent, "is required"))
		return
	}

	createInput := CreateInput{
		Title:      *input.Title,
		Slug:       pointer.Val(input.Slug),
		Excerpt:    pointer.Val(input.Excerpt),
		Content:    *input.Content,
		Published:  pointer.Val(input.Published),
		CategoryID: input.CategoryID,
	}
	if input.TagIDs != nil {
		createInput.TagIDs = *input.TagIDs
	}

	created, err := handler.service.Create(request.Context(), createInput, caller.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// update handles PUT /{id}. Admin only.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updateInput := UpdateInput{
		Title:      input.Title,
		Slug:       input.Slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Published:  input.Published,
		CategoryID: input.CategoryID,
	}
	if input.TagIDs != nil {
		updateInput.TagIDs = *input.TagIDs
	}

	updated, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), updateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

// delete handles DELETE /{id}. Admin only.
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
		CategoryID: query.Get("category"),
		TagID:      query.Get("tag"),
		Search:     query.Get("search"),
		OrderBy:    query.Get("order_by"),
		OrderDir:   query.Get("order_dir"),
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

// isAdmin reports whether the request carries an admin caller.
func isAdmin(request *http.Request) bool {
	caller := requestutil.Caller(request)
	return caller != nil && caller.IsAdmin()
}
