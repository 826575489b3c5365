// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package tag

import "context"

// Repository defines the data access contract for tags.
type Repository interface {
	// List returns every tag ordered by name, with live post counts.
	List(context context.Context) ([]*Tag, error)

	// FindByID returns the tag with the given ID.
	FindByID(context context.Context, id string) (*Tag, error)

	// FindBySlug returns the tag with the given slug.
	FindBySlug(context context.Context, slug string) (*Tag, error)

	// Create persists a new tag.
	Create(context context.Context, tag *Tag) error

	// Update persists changes to name and slug.
	Update(context context.Context, tag *Tag) error

	// Delete physically removes the tag row.
	Delete(context context.Context, id string) error

	// CountPosts returns the number of posts carrying the tag.
	CountPosts(context context.Context, id string) (int, error)
}
