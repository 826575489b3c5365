// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package post implements the blog's core content domain.

It owns the post lifecycle (draft, publish, unpublish), the many-to-many tag
associations, and the filtered discovery listing that powers both the admin
back office and the public blog.

# Publication timestamp

A post records the moment it was first published. Publishing sets the
timestamp only when it is still unset, and unpublishing never clears it, so
the original publication date survives edit/unpublish/republish cycles.
*/
package post

import "time"

// # Domain Entities

// Post is a single blog entry.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"` // set at most once
	AuthorID    string     `json:"author_id"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Tags        []TagRef   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TagRef is the denormalized tag view carried on a hydrated post.
type TagRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// # Discovery Filter

// Filter narrows the post listing.
type Filter struct {
	// Published filters by publication state; nil returns both.
	Published *bool

	// CategoryID restricts to a single category.
	CategoryID string

	// TagID restricts to posts carrying the tag.
	TagID string

	// Search is a case-insensitive substring match over title, excerpt, and content.
	Search string

	// OrderBy is a whitelisted sort key; unknown values fall back to the default.
	OrderBy string

	// OrderDir is "asc" or "desc" (default).
	OrderDir string
}

// # Field Identifiers

const (
	FieldTitle   = "title"
	FieldSlug    = "slug"
	FieldExcerpt = "excerpt"
	FieldContent = "content"
)
