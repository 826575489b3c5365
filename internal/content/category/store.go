// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package category

import "context"

// Repository defines the data access contract for categories.
type Repository interface {
	// List returns every category ordered by name, with live post counts.
	List(context context.Context) ([]*Category, error)

	// FindByID returns the category with the given ID.
	FindByID(context context.Context, id string) (*Category, error)

	// FindBySlug returns the category with the given slug.
	FindBySlug(context context.Context, slug string) (*Category, error)

	// Create persists a new category.
	Create(context context.Context, category *Category) error

	// Update persists changes to name, slug, and description.
	Update(context context.Context, category *Category) error

	// Delete physically removes the category row.
	Delete(context context.Context, id string) error

	// CountPosts returns the number of posts referencing the category.
	CountPosts(context context.Context, id string) (int, error)
}
