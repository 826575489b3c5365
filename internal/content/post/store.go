// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package post

import "context"

// Repository defines the data access contract for blog posts.
type Repository interface {

	/*
		List returns a filtered, paginated slice of posts and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Publication state, category, tag, search, sorting)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Post: Hydrated posts including tag references
		  - int: Total count matching the filter
		  - error: Database execution errors
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error)

	/*
		Count returns the number of posts matching the filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - int: Matching row count
		  - error: Database execution errors
	*/
	Count(context context.Context, filter Filter) (int, error)

	/*
		FindByID returns the post with the given ID, tags included.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: Hydrated entity
		  - error: apperr.NotFound or database errors
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		FindBySlug returns the post with the given slug, tags included.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Post: Hydrated entity
		  - error: apperr.NotFound or database errors
	*/
	FindBySlug(context context.Context, slug string) (*Post, error)

	/*
		Create persists a new post and its tag links in one transaction.

		Parameters:
		  - context: context.Context
		  - post: *Post
		  - tagIDs: []string (tag links to create; empty means none)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, post *Post, tagIDs []string) error

	/*
		Update persists post changes and synchronizes tag links in one
		transaction. A nil tagIDs leaves the links untouched; an empty
		slice removes them all.

		Parameters:
		  - context: context.Context
		  - post: *Post
		  - tagIDs: []string or nil

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Update(context context.Context, post *Post, tagIDs []string) error

	/*
		Delete physically removes the post; junction rows cascade.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error
}
