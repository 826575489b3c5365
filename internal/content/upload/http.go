// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhngo/folio/internal/platform/constants"
	"github.com/minhngo/folio/internal/platform/middleware"
	requestutil "github.com/minhngo/folio/internal/platform/request"
	"github.com/minhngo/folio/internal/platform/respond"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/pagination"
)

// multipartMemoryLimit is how much of the form is buffered in memory;
// larger bodies spill to temporary files.
const multipartMemoryLimit = 4 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the upload endpoints. The whole surface is admin-only;
// the public reaches stored files through their bucket URLs.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Post("/", handler.upload)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Delete("/{id}", handler.delete)
	router.Delete("/", handler.deleteBatch)

	return router
}

// upload handles POST /. Expects a multipart form with a "file" part and an
// optional "folder" field.
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredCaller(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Reject oversized bodies at the transport before parsing the form.
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadSize+multipartMemoryLimit)

	if err := request.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respond.Error(writer, request, validate.RequiredError("file", "Invalid multipart form"))
		return
	}

	part, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("file", "is required"))
		return
	}
	defer part.Close()

	file, err := handler.service.Upload(request.Context(), Input{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         part,
		Folder:       request.FormValue("folder"),
	}, caller.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, file)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	files, total, err := handler.service.List(
		request.Context(),
		request.URL.Query().Get("folder"),
		params.Limit,
		params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if files == nil {
		files = []*File{}
	}

	respond.Paginated(writer, files, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	file, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, file)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type deleteBatchRequest struct {
	IDs []string `json:"ids"`
}

// deleteBatch handles DELETE / with a JSON body listing the IDs to remove.
func (handler *Handler) deleteBatch(writer http.ResponseWriter, request *http.Request) {
	var input deleteBatchRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if len(input.IDs) == 0 {
		respond.Error(writer, request, validate.RequiredError("ids", "is required"))
		return
	}

	deleted, err := handler.service.DeleteBatch(request.Context(), input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"deleted": deleted})
}
