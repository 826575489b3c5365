// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package category manages the blog's category taxonomy.
package category

import "time"

// Category groups blog posts into a single-level taxonomy.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	PostCount   int       `json:"post_count"` // computed live, never persisted
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
)
