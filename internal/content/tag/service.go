// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package tag

import (
	"context"
	"log/slog"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/slug"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// Service orchestrates the business logic for the tag taxonomy.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns all tags with live post counts.
func (service *Service) List(context context.Context) ([]*Tag, error) {
	return service.repo.List(context)
}

// Get fetches a single tag by UUID or slug.
func (service *Service) Get(context context.Context, identifier string) (*Tag, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(context, identifier)
	}
	return service.repo.FindBySlug(context, identifier)
}

// CreateInput holds the attributes for a new tag.
type CreateInput struct {
	Name string
	Slug string
}

// Create validates and persists a new tag.
func (service *Service) Create(context context.Context, input CreateInput) (*Tag, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 60)

	if input.Slug == "" {
		input.Slug = slug.From(input.Name)
	}
	validator.Slug(FieldSlug, input.Slug)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	tag := &Tag{
		ID:   uuidv7.New(),
		Name: input.Name,
		Slug: input.Slug,
	}

	if err := service.repo.Create(context, tag); err != nil {
		return nil, err
	}

	service.logger.Info("tag_created",
		slog.String("tag_id", tag.ID),
		slog.String("slug", tag.Slug),
	)

	return tag, nil
}

// UpdateInput holds the mutable attributes of a tag. Nil means unchanged.
type UpdateInput struct {
	Name *string
	Slug *string
}

// Update applies a partial update to an existing tag.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Tag, error) {
	tag, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, 60)
		tag.Name = *input.Name
	}
	if input.Slug != nil {
		validator.Slug(FieldSlug, *input.Slug)
		tag.Slug = *input.Slug
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, tag); err != nil {
		return nil, err
	}

	service.logger.Info("tag_updated", slog.String("tag_id", tag.ID))

	return tag, nil
}

// Delete removes a tag unless posts still carry it.
func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}

	count, err := service.repo.CountPosts(context, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.HasDependents("tag", count)
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.String("tag_id", id))

	return nil
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
