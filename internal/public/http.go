// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package public

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/static"
)

// homeRecentPosts caps the listing on the landing page.
const homeRecentPosts = 5

// siteSource is the slice of [static.Loader] the pages read from. The loader
// already filters to published content, so the pages never see drafts.
type siteSource interface {
	AllPosts() []static.Post
	PostBySlug(slug string) (*static.Post, error)
	AllProjects() []static.Project
	ProjectBySlug(slug string) (*static.Project, error)
	Resume() (*static.Resume, error)
}

// Handler serves the reader-facing pages.
type Handler struct {
	content   siteSource
	templates *template.Template
	logger    *slog.Logger
}

// NewHandler constructs the page handler, parsing the embedded templates.
func NewHandler(content siteSource, logger *slog.Logger) (*Handler, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		content:   content,
		templates: templates,
		logger:    logger,
	}, nil
}

// Routes mounts the public pages.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.home)
	router.Get("/blog", handler.blog)
	router.Get("/blog/{slug}", handler.blogPost)
	router.Get("/projects", handler.projectList)
	router.Get("/projects/{slug}", handler.projectPage)
	router.Get("/resume", handler.resumePage)

	return router
}

// # View Models

type postView struct {
	Title    string
	Slug     string
	Excerpt  string
	Category string
	Date     time.Time
	Tags     []string
	Body     template.HTML
}

type projectView struct {
	Title        string
	Slug         string
	Description  string
	Technologies []string
	GithubURL    string
	LiveURL      string
	Featured     bool
	Body         template.HTML
}

// # Pages

func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	posts := handler.content.AllPosts()
	if len(posts) > homeRecentPosts {
		posts = posts[:homeRecentPosts]
	}

	var featured []static.Project
	for _, entry := range handler.content.AllProjects() {
		if entry.Featured {
			featured = append(featured, entry)
		}
	}

	handler.render(writer, request, http.StatusOK, "home.html", map[string]any{
		"Title":    "Home",
		"Heading":  "Hi, I build things.",
		"Posts":    handler.postViews(posts, false),
		"Projects": handler.projectViews(featured, false),
	})
}

func (handler *Handler) blog(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, http.StatusOK, "blog.html", map[string]any{
		"Title": "Blog",
		"Posts": handler.postViews(handler.content.AllPosts(), false),
	})
}

func (handler *Handler) blogPost(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.content.PostBySlug(chi.URLParam(request, "slug"))
	if err != nil {
		handler.renderError(writer, request, err)
		return
	}

	views := handler.postViews([]static.Post{*found}, true)

	handler.render(writer, request, http.StatusOK, "post.html", map[string]any{
		"Title": found.Title,
		"Post":  views[0],
	})
}

func (handler *Handler) projectList(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, http.StatusOK, "projects.html", map[string]any{
		"Title":    "Projects",
		"Projects": handler.projectViews(handler.content.AllProjects(), false),
	})
}

func (handler *Handler) projectPage(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.content.ProjectBySlug(chi.URLParam(request, "slug"))
	if err != nil {
		handler.renderError(writer, request, err)
		return
	}

	views := handler.projectViews([]static.Project{*found}, true)

	handler.render(writer, request, http.StatusOK, "project.html", map[string]any{
		"Title":   found.Title,
		"Project": views[0],
	})
}

func (handler *Handler) resumePage(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.content.Resume()
	if err != nil {
		handler.renderError(writer, request, err)
		return
	}

	handler.render(writer, request, http.StatusOK, "resume.html", map[string]any{
		"Title":  "Resume",
		"Resume": document,
	})
}

// # Helpers

// postViews maps posts to their view model. The Markdown body is only
// rendered when withBody is set; listings never need it.
func (handler *Handler) postViews(posts []static.Post, withBody bool) []postView {
	views := make([]postView, 0, len(posts))

	for _, entry := range posts {
		view := postView{
			Title:    entry.Title,
			Slug:     entry.Slug,
			Excerpt:  entry.Excerpt,
			Category: entry.Category,
			Date:     entry.Date,
			Tags:     entry.Tags,
		}

		if withBody {
			body, err := renderMarkdown(entry.Content)
			if err != nil {
				handler.logger.Error("markdown_render_failed",
					slog.String("slug", entry.Slug),
					slog.String("error", err.Error()),
				)
			} else {
				view.Body = body
			}
		}

		views = append(views, view)
	}

	return views
}

func (handler *Handler) projectViews(projects []static.Project, withBody bool) []projectView {
	views := make([]projectView, 0, len(projects))

	for _, entry := range projects {
		view := projectView{
			Title:        entry.Title,
			Slug:         entry.Slug,
			Description:  entry.Description,
			Technologies: entry.Technologies,
			GithubURL:    entry.GithubURL,
			LiveURL:      entry.LiveURL,
			Featured:     entry.Featured,
		}

		if withBody && entry.Content != "" {
			if body, err := renderMarkdown(entry.Content); err == nil {
				view.Body = body
			}
		}

		views = append(views, view)
	}

	return views
}

// render executes a page template into a buffer first so a template failure
// becomes a clean 500 instead of a half-written page.
func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := handler.templates.ExecuteTemplate(&buf, page, data); err != nil {
		handler.logger.Error("template_render_failed",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buf.WriteTo(writer)
}

// renderError maps an error to the HTML error page.
func (handler *Handler) renderError(writer http.ResponseWriter, request *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong."

	if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
		status = http.StatusNotFound
		message = "The page you are looking for does not exist."
	} else {
		handler.logger.Error("page_failed",
			slog.String("path", request.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	handler.render(writer, request, status, "error.html", map[string]any{
		"Title":   "Error",
		"Status":  status,
		"Message": message,
	})
}
