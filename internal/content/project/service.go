// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/slug"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// Validation limits for project attributes.
const (
	titleMaxLen          = 200
	descriptionMaxLen    = 500
	technologyMaxLen     = 60
	maxTechnologyEntries = 30
)

// Service orchestrates the business logic for the project portfolio.
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

// List returns a filtered, paginated page of projects plus the total count.
func (service *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*Project, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

// Count returns the number of projects matching the filter.
func (service *Service) Count(ctx context.Context, filter Filter) (int, error) {
	return service.repo.Count(ctx, filter)
}

// Get fetches a single project by UUID or slug.
func (service *Service) Get(ctx context.Context, identifier string) (*Project, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(ctx, identifier)
	}
	return service.repo.FindBySlug(ctx, identifier)
}

// CreateInput holds the attributes for a new project.
type CreateInput struct {
	Title        string
	Slug         string
	Description  string
	Content      string
	Technologies []string
	GithubURL    string
	LiveURL      string
	ImageURL     string
	Featured     bool
	Published    bool
}

// Create validates and persists a new project. An omitted slug is derived
// from the title.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Project, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, titleMaxLen).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, descriptionMaxLen).
		URL(FieldGithubURL, input.GithubURL).
		URL(FieldLiveURL, input.LiveURL).
		URL(FieldImageURL, input.ImageURL)

	if input.Slug == "" {
		input.Slug = slug.From(input.Title)
	}
	validator.Slug(FieldSlug, input.Slug)

	technologies := normalizeTechnologies(validator, input.Technologies)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Project{
		ID:           uuidv7.New(),
		Title:        input.Title,
		Slug:         input.Slug,
		Description:  input.Description,
		Content:      input.Content,
		Technologies: technologies,
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		ImageURL:     input.ImageURL,
		Featured:     input.Featured,
		Published:    input.Published,
	}

	if err := service.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	service.logger.Info("project_created",
		slog.String("project_id", entity.ID),
		slog.String("slug", entity.Slug),
	)

	return entity, nil
}

// UpdateInput holds the mutable attributes of a project. Nil means unchanged.
type UpdateInput struct {
	Title        *string
	Slug         *string
	Description  *string
	Content      *string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	ImageURL     *string
	Featured     *bool
	Published    *bool
}

// Update applies a partial update to an existing project. A nil Technologies
// slice keeps the existing stack; an empty slice clears it.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Project, error) {
	entity, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, titleMaxLen)
		entity.Title = *input.Title
	}
	if input.Slug != nil {
		validator.Slug(FieldSlug, *input.Slug)
		entity.Slug = *input.Slug
	}
	if input.Description != nil {
		validator.Required(FieldDescription, *input.Description).
			MaxLen(FieldDescription, *input.Description, descriptionMaxLen)
		entity.Description = *input.Description
	}
	if input.Content != nil {
		entity.Content = *input.Content
	}
	if input.Technologies != nil {
		entity.Technologies = normalizeTechnologies(validator, input.Technologies)
	}
	if input.GithubURL != nil {
		validator.URL(FieldGithubURL, *input.GithubURL)
		entity.GithubURL = *input.GithubURL
	}
	if input.LiveURL != nil {
		validator.URL(FieldLiveURL, *input.LiveURL)
		entity.LiveURL = *input.LiveURL
	}
	if input.ImageURL != nil {
		validator.URL(FieldImageURL, *input.ImageURL)
		entity.ImageURL = *input.ImageURL
	}
	if input.Featured != nil {
		entity.Featured = *input.Featured
	}
	if input.Published != nil {
		entity.Published = *input.Published
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	service.logger.Info("project_updated", slog.String("project_id", entity.ID))

	return entity, nil
}

// Delete physically removes a project.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))

	return nil
}

// normalizeTechnologies trims entries, drops empties, and enforces limits.
// The result is never nil so the JSONB column stores [] instead of NULL.
func normalizeTechnologies(validator *validate.Validator, raw []string) []string {
	technologies := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		validator.MaxLen(FieldTechnologies, entry, technologyMaxLen)
		technologies = append(technologies, entry)
	}

	validator.Custom(FieldTechnologies, len(technologies) > maxTechnologyEntries, "Too many entries")

	return technologies
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
