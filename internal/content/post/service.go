// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package post

import (
	"context"
	"log/slog"
	"time"

	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/slug"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// Validation limits for post attributes.
const (
	titleMaxLen   = 200
	excerptMaxLen = 500
)

// Service orchestrates the business logic of the blog post lifecycle.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

/*
List returns a filtered, paginated page of posts plus the total count.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Post: Hydrated posts
  - int: Total matching rows
  - error: Repository errors
*/
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// Count returns the number of posts matching the filter.
func (service *Service) Count(context context.Context, filter Filter) (int, error) {
	return service.repo.Count(context, filter)
}

// Get fetches a single post by UUID or slug.
func (service *Service) Get(context context.Context, identifier string) (*Post, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(context, identifier)
	}
	return service.repo.FindBySlug(context, identifier)
}

// CreateInput holds the attributes for a new post.
type CreateInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	Published  bool
	CategoryID *string
	TagIDs     []string
}

/*
Create validates and persists a new post authored by the given user.

Description: An omitted slug is derived from the title. A post created in
the published state gets its publication timestamp stamped immediately.

Parameters:
  - context: context.Context
  - input: CreateInput
  - authorID: string (account ID of the authenticated author)

Returns:
  - *Post: The created post
  - error: apperr.ValidationError, apperr.Conflict (slug taken), or repository errors
*/
func (service *Service) Create(context context.Context, input CreateInput, authorID string) (*Post, error) {
	// ── 1. Validate ────────────────────────────────────────────────
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, titleMaxLen).
		Required(FieldContent, input.Content).
		MaxLen(FieldExcerpt, input.Excerpt, excerptMaxLen)

	if input.Slug == "" {
		input.Slug = slug.From(input.Title)
	}
	validator.Slug(FieldSlug, input.Slug)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Assemble the entity ─────────────────────────────────────
	entity := &Post{
		ID:         uuidv7.New(),
		Title:      input.Title,
		Slug:       input.Slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Published:  input.Published,
		AuthorID:   authorID,
		CategoryID: normalizeCategory(input.CategoryID),
	}

	if entity.Published {
		publishedAt := service.now().UTC()
		entity.PublishedAt = &publishedAt
	}

	// ── 3. Persist post + tag links atomically ─────────────────────
	if err := service.repo.Create(context, entity, input.TagIDs); err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.String("post_id", entity.ID),
		slog.String("slug", entity.Slug),
		slog.Bool("published", entity.Published),
	)

	// Re-read so tag references come back hydrated.
	return service.repo.FindByID(context, entity.ID)
}

// UpdateInput holds the mutable attributes of a post. Nil means unchanged.
//
// CategoryID follows the same convention with one twist: a non-nil pointer
// to an empty string detaches the post from its category. TagIDs replaces
// the full tag set; nil keeps the existing links, an empty slice clears them.
type UpdateInput struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	Published  *bool
	CategoryID *string
	TagIDs     []string
}

/*
Update applies a partial update to an existing post.

Description: The publication timestamp is monotonic. Transitioning a post to
published stamps the timestamp only if it was never set, and unpublishing
leaves it alone, so the original publication date survives republish cycles.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Post: The updated, re-hydrated post
  - error: apperr.NotFound, apperr.ValidationError, or repository errors
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Post, error) {
	// ── 1. Load current state ──────────────────────────────────────
	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// ── 2. Apply and validate the requested changes ────────────────
	validator := &validate.Validator{}

	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, titleMaxLen)
		entity.Title = *input.Title
	}
	if input.Slug != nil {
		validator.Slug(FieldSlug, *input.Slug)
		entity.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		validator.MaxLen(FieldExcerpt, *input.Excerpt, excerptMaxLen)
		entity.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
		entity.Content = *input.Content
	}
	if input.CategoryID != nil {
		entity.CategoryID = normalizeCategory(input.CategoryID)
	}

	if input.Published != nil {
		entity.Published = *input.Published
		if entity.Published && entity.PublishedAt == nil {
			publishedAt := service.now().UTC()
			entity.PublishedAt = &publishedAt
		}
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 3. Persist post + tag links atomically ─────────────────────
	if err := service.repo.Update(context, entity, input.TagIDs); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.String("post_id", entity.ID))

	return service.repo.FindByID(context, entity.ID)
}

// Delete physically removes a post and its tag links.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))

	return nil
}

// normalizeCategory maps an empty category reference to an SQL NULL.
func normalizeCategory(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
