// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package tag manages the blog's free-form tag taxonomy.
package tag

import "time"

// Tag labels blog posts; a post can carry any number of tags.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	PostCount int       `json:"post_count"` // computed live, never persisted
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName = "name"
	FieldSlug = "slug"
)
