// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package project

import "context"

// Repository defines the data access contract for portfolio projects.
type Repository interface {
	// List returns a filtered, paginated slice of projects and the total count.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Project, int, error)

	// Count returns the number of projects matching the filter.
	Count(ctx context.Context, filter Filter) (int, error)

	// FindByID returns the project with the given ID, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*Project, error)

	// FindBySlug returns the project with the given slug, or apperr.NotFound.
	FindBySlug(ctx context.Context, slug string) (*Project, error)

	// Create persists a new project.
	Create(ctx context.Context, project *Project) error

	// Update persists project changes, or apperr.NotFound.
	Update(ctx context.Context, project *Project) error

	// Delete physically removes the project, or apperr.NotFound.
	Delete(ctx context.Context, id string) error
}
