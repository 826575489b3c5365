// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package project implements the portfolio project domain: showcased work
// with a technology stack, external links, and a featured flag that drives
// the landing page highlight section.
package project

import "time"

// Project is a single portfolio entry.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Content      string    `json:"content,omitempty"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"github_url,omitempty"`
	LiveURL      string    `json:"live_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Featured     bool      `json:"featured"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter narrows the project listing.
type Filter struct {
	Published *bool
	Featured  *bool

	// Search is a case-insensitive substring match over title and description.
	Search string

	// OrderBy is a whitelisted sort key; unknown values fall back to the default.
	OrderBy string

	// OrderDir is "asc" or "desc" (default).
	OrderDir string
}

const (
	FieldTitle        = "title"
	FieldSlug         = "slug"
	FieldDescription  = "description"
	FieldTechnologies = "technologies"
	FieldGithubURL    = "github_url"
	FieldLiveURL      = "live_url"
	FieldImageURL     = "image_url"
)
