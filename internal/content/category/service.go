// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/slug"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// Service orchestrates the business logic for the category taxonomy.
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

// List returns all categories with live post counts.
func (service *Service) List(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

// Get fetches a single category by UUID or slug.
func (service *Service) Get(context context.Context, identifier string) (*Category, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(context, identifier)
	}
	return service.repo.FindBySlug(context, identifier)
}

// CreateInput holds the attributes for a new category.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
}

// Create validates and persists a new category.
func (service *Service) Create(context context.Context, input CreateInput) (*Category, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 120)

	if input.Slug == "" {
		input.Slug = slug.From(input.Name)
	}
	validator.Slug(FieldSlug, input.Slug)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := &Category{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// UpdateInput holds the mutable attributes of a category. Nil means unchanged.
type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// Update applies a partial update to an existing category.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Category, error) {
	category, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, 120)
		category.Name = *input.Name
	}
	if input.Slug != nil {
		validator.Slug(FieldSlug, *input.Slug)
		category.Slug = *input.Slug
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID))

	return category, nil
}

// Delete removes a category unless posts still reference it.
//
// The dependent-posts guard keeps deletion from silently orphaning content:
// the caller must reassign or delete the posts first.
func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}

	count, err := service.repo.CountPosts(context, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.HasDependents("category", count)
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", id))

	return nil
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
