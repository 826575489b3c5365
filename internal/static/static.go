// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package static loads site content from a directory of flat files.

It is the file-based counterpart to the database-backed content domains:
posts are Markdown files with a YAML front matter block, projects and the
résumé are JSON documents. The loader is deliberately forgiving — a file
that fails to parse is logged and skipped, and a missing directory yields
an empty collection, so one bad file never takes the whole site down.
*/
package static

import (
	"time"

	"github.com/minhngo/folio/internal/content/resume"
)

// Post is one Markdown entry with its front matter applied.
type Post struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Date      time.Time `json:"date"`
	Published bool      `json:"published"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Content   string    `json:"content"`
}

// Project is one portfolio entry from the projects file.
type Project struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Content      string   `json:"content,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Featured     bool     `json:"featured"`
	Published    bool     `json:"published"`
}

// Resume aliases the shared résumé document schema so file-based and
// database-backed résumés stay interchangeable.
type Resume = resume.Document

// frontMatter is the YAML header of a Markdown post.
type frontMatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Excerpt   string   `yaml:"excerpt"`
	Date      string   `yaml:"date"`
	Published *bool    `yaml:"published"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
}

// projectFrontMatter is the YAML header of a Markdown project file.
type projectFrontMatter struct {
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	GithubURL    string   `yaml:"github_url"`
	LiveURL      string   `yaml:"live_url"`
	ImageURL     string   `yaml:"image_url"`
	Featured     bool     `yaml:"featured"`
	Published    *bool    `yaml:"published"`
}
