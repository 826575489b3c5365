// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package graphql exposes the content API as a GraphQL endpoint.

The schema is built by hand and mirrors the REST surface: public queries see
published content only, admin mutations require the ADMIN role. Both layers
share the same service objects, so authorization and validation behave
identically regardless of transport.
*/
package graphql

import (
	"context"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/content/upload"
	"github.com/minhngo/folio/internal/platform/ctxutil"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/users/auth"
)

// # Service Contracts

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginSession, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.LoginSession, error)
}

type postService interface {
	List(ctx context.Context, filter post.Filter, limit, offset int) ([]*post.Post, int, error)
	Count(ctx context.Context, filter post.Filter) (int, error)
	Get(ctx context.Context, identifier string) (*post.Post, error)
	Create(ctx context.Context, input post.CreateInput, authorID string) (*post.Post, error)
	Update(ctx context.Context, id string, input post.UpdateInput) (*post.Post, error)
	Delete(ctx context.Context, id string) error
}

type categoryService interface {
	List(ctx context.Context) ([]*category.Category, error)
	Get(ctx context.Context, identifier string) (*category.Category, error)
	Create(ctx context.Context, input category.CreateInput) (*category.Category, error)
	Update(ctx context.Context, id string, input category.UpdateInput) (*category.Category, error)
	Delete(ctx context.Context, id string) error
}

type tagService interface {
	List(ctx context.Context) ([]*tag.Tag, error)
	Get(ctx context.Context, identifier string) (*tag.Tag, error)
	Create(ctx context.Context, input tag.CreateInput) (*tag.Tag, error)
	Update(ctx context.Context, id string, input tag.UpdateInput) (*tag.Tag, error)
	Delete(ctx context.Context, id string) error
}

type projectService interface {
	List(ctx context.Context, filter project.Filter, limit, offset int) ([]*project.Project, int, error)
	Count(ctx context.Context, filter project.Filter) (int, error)
	Get(ctx context.Context, identifier string) (*project.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*project.Project, error)
	Update(ctx context.Context, id string, input project.UpdateInput) (*project.Project, error)
	Delete(ctx context.Context, id string) error
}

type resumeService interface {
	Latest(ctx context.Context) (*resume.Revision, error)
	History(ctx context.Context) ([]*resume.Revision, error)
	Update(ctx context.Context, document resume.Document) (*resume.Revision, error)
	DeleteLatest(ctx context.Context) error
}

type uploadService interface {
	List(ctx context.Context, folder string, limit, offset int) ([]*upload.File, int, error)
	Get(ctx context.Context, id string) (*upload.File, error)
	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, ids []string) (int, error)
}

// Resolver holds the services behind the schema's fields.
type Resolver struct {
	auth       authService
	posts      postService
	categories categoryService
	tags       tagService
	projects   projectService
	resumes    resumeService
	uploads    uploadService
}

// Services bundles everything the resolver needs.
type Services struct {
	Auth       authService
	Posts      postService
	Categories categoryService
	Tags       tagService
	Projects   projectService
	Resumes    resumeService
	Uploads    uploadService
}

// NewResolver constructs a [Resolver].
func NewResolver(services Services) *Resolver {
	return &Resolver{
		auth:       services.Auth,
		posts:      services.Posts,
		categories: services.Categories,
		tags:       services.Tags,
		projects:   services.Projects,
		resumes:    services.Resumes,
		uploads:    services.Uploads,
	}
}

// # Caller Helpers

// callerFrom returns the caller attached by the HTTP middleware, or nil.
func callerFrom(ctx context.Context) *sec.Caller {
	return ctxutil.GetCaller(ctx)
}

// requireAdmin guards admin-only resolvers.
func requireAdmin(ctx context.Context) (*sec.Caller, error) {
	return auth.RequireAdmin(callerFrom(ctx))
}

// requireAuthenticated guards resolvers needing any signed-in caller.
func requireAuthenticated(ctx context.Context) (*sec.Caller, error) {
	return auth.RequireAuthenticated(callerFrom(ctx))
}
