// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package public

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/static"
)

const publishedPost = `---
title: Published Post
slug: published-post
excerpt: Visible
date: 2026-02-01
category: engineering
tags:
  - go
---

# Heading

Some **bold** text.
`

const secretDraft = `---
title: Secret Draft
slug: secret-draft
published: false
---

unfinished
`

// writeContentTree builds a content directory the loader can read.
func writeContentTree(t *testing.T, withResume bool) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "published-post.mdx"), []byte(publishedPost), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "secret-draft.mdx"), []byte(secretDraft), 0o644))

	projects := []static.Project{
		{Title: "Folio", Slug: "folio", Description: "This site", Content: "Built with **Go**.", Technologies: []string{"Go"}, Featured: true, Published: true},
		{Title: "Hidden", Slug: "hidden", Description: "wip", Published: false},
	}
	raw, err := json.Marshal(projects)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), raw, 0o644))

	if withResume {
		document := resume.Document{Version: resume.DocumentVersion}
		document.Basics.Name = "Minh Ngo"
		document.Basics.Label = "Backend Engineer"
		raw, err := json.Marshal(document)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.json"), raw, 0o644))
	}

	return dir
}

func newTestHandler(t *testing.T, withResume bool) *Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, err := NewHandler(static.NewLoader(writeContentTree(t, withResume), logger), logger)
	require.NoError(t, err)
	return handler
}

func get(t *testing.T, handler *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHomePage(t *testing.T) {
	handler := newTestHandler(t, true)

	response := get(t, handler, "/")

	assert.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, "Published Post")
	assert.Contains(t, body, "Folio")
	assert.NotContains(t, body, "Secret Draft")
	assert.NotContains(t, body, "Hidden")
}

func TestBlogListing(t *testing.T) {
	handler := newTestHandler(t, true)

	response := get(t, handler, "/blog")

	assert.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, "Published Post")
	assert.Contains(t, body, "engineering")
	assert.NotContains(t, body, "Secret Draft")
}

func TestBlogPostPage(t *testing.T) {
	t.Run("renders markdown body", func(t *testing.T) {
		handler := newTestHandler(t, true)

		response := get(t, handler, "/blog/published-post")

		assert.Equal(t, http.StatusOK, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "<h1>Heading</h1>")
		assert.Contains(t, body, "<strong>bold</strong>")
		assert.Contains(t, body, "go")
	})

	t.Run("draft is a 404, not a 403", func(t *testing.T) {
		handler := newTestHandler(t, true)

		response := get(t, handler, "/blog/secret-draft")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		handler := newTestHandler(t, true)

		response := get(t, handler, "/blog/never-written")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}

func TestProjectPages(t *testing.T) {
	handler := newTestHandler(t, true)

	listing := get(t, handler, "/projects")
	assert.Equal(t, http.StatusOK, listing.Code)
	assert.Contains(t, listing.Body.String(), "Folio")
	assert.NotContains(t, listing.Body.String(), "Hidden")

	page := get(t, handler, "/projects/folio")
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "This site")
	assert.Contains(t, page.Body.String(), "<strong>Go</strong>")

	hidden := get(t, handler, "/projects/hidden")
	assert.Equal(t, http.StatusNotFound, hidden.Code)
}

func TestResumePage(t *testing.T) {
	t.Run("renders the latest document", func(t *testing.T) {
		handler := newTestHandler(t, true)

		response := get(t, handler, "/resume")

		assert.Equal(t, http.StatusOK, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Minh Ngo")
		assert.Contains(t, body, "Backend Engineer")
	})

	t.Run("missing resume is a 404", func(t *testing.T) {
		handler := newTestHandler(t, false)

		response := get(t, handler, "/resume")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}
