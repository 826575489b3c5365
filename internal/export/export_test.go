// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/static"
)

type fakePosts struct{ posts []*post.Post }

func (f *fakePosts) List(_ context.Context, _ post.Filter, limit, offset int) ([]*post.Post, int, error) {
	if offset >= len(f.posts) {
		return nil, len(f.posts), nil
	}
	end := offset + limit
	if end > len(f.posts) {
		end = len(f.posts)
	}
	return f.posts[offset:end], len(f.posts), nil
}

type fakeProjects struct{ projects []*project.Project }

func (f *fakeProjects) List(_ context.Context, _ project.Filter, limit, offset int) ([]*project.Project, int, error) {
	if offset >= len(f.projects) {
		return nil, len(f.projects), nil
	}
	end := offset + limit
	if end > len(f.projects) {
		end = len(f.projects)
	}
	return f.projects[offset:end], len(f.projects), nil
}

type fakeCategories struct{ categories map[string]*category.Category }

func (f *fakeCategories) Get(_ context.Context, identifier string) (*category.Category, error) {
	if c, ok := f.categories[identifier]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Category not found")
}

type fakeResumes struct{ revision *resume.Revision }

func (f *fakeResumes) Latest(_ context.Context) (*resume.Revision, error) {
	if f.revision == nil {
		return nil, apperr.NotFound("No resume has been saved yet")
	}
	return f.revision, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportAll(t *testing.T) {
	publishedAt := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	categoryID := "11111111-1111-1111-1111-111111111111"

	posts := &fakePosts{posts: []*post.Post{
		{
			ID:          "p1",
			Title:       "Shipping It",
			Slug:        "shipping-it",
			Excerpt:     "Notes on releases",
			Content:     "# Release day\n\nIt shipped.",
			Published:   true,
			PublishedAt: &publishedAt,
			CategoryID:  &categoryID,
			Tags:        []post.TagRef{{ID: "t1", Name: "Go", Slug: "go"}},
		},
	}}

	projects := &fakeProjects{projects: []*project.Project{
		{
			Title:        "Folio",
			Slug:         "folio",
			Description:  "This site",
			Technologies: []string{"Go", "PostgreSQL"},
			Featured:     true,
			Published:    true,
		},
	}}

	categories := &fakeCategories{categories: map[string]*category.Category{
		categoryID: {ID: categoryID, Name: "Engineering", Slug: "engineering"},
	}}

	document := resume.Document{Version: resume.DocumentVersion}
	document.Basics.Name = "Minh Ngo"
	resumes := &fakeResumes{revision: &resume.Revision{ID: "r1", Document: document}}

	t.Run("writes a snapshot the static loader can read back", func(t *testing.T) {
		dir := t.TempDir()
		service := NewService(posts, projects, categories, resumes, dir, discardLogger())

		summary, err := service.ExportAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Posts)
		assert.Equal(t, 1, summary.Projects)
		assert.True(t, summary.Resume)

		// Round-trip: the exported tree is a valid static content dir.
		loader := static.NewLoader(dir, discardLogger())

		loadedPosts := loader.AllPosts()
		require.Len(t, loadedPosts, 1)
		assert.Equal(t, "Shipping It", loadedPosts[0].Title)
		assert.Equal(t, "shipping-it", loadedPosts[0].Slug)
		assert.Equal(t, "engineering", loadedPosts[0].Category)
		assert.Equal(t, []string{"go"}, loadedPosts[0].Tags)
		assert.Equal(t, publishedAt, loadedPosts[0].Date)
		assert.Contains(t, loadedPosts[0].Content, "# Release day")

		loadedProjects := loader.AllProjects()
		require.Len(t, loadedProjects, 1)
		assert.Equal(t, "Folio", loadedProjects[0].Title)
		assert.True(t, loadedProjects[0].Featured)

		loadedResume, err := loader.Resume()
		require.NoError(t, err)
		assert.Equal(t, "Minh Ngo", loadedResume.Basics.Name)
	})

	t.Run("rebuild clears stale post files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0o755))
		stale := filepath.Join(dir, "posts", "deleted-post.mdx")
		require.NoError(t, os.WriteFile(stale, []byte("---\ntitle: Old\n---\nold"), 0o644))

		service := NewService(posts, projects, categories, resumes, dir, discardLogger())
		_, err := service.ExportAll(context.Background())

		require.NoError(t, err)
		_, statErr := os.Stat(stale)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing resume is not an error", func(t *testing.T) {
		dir := t.TempDir()
		service := NewService(posts, projects, categories, &fakeResumes{}, dir, discardLogger())

		summary, err := service.ExportAll(context.Background())

		require.NoError(t, err)
		assert.False(t, summary.Resume)
		_, statErr := os.Stat(filepath.Join(dir, "resume.json"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("dangling category reference is skipped, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		service := NewService(posts, projects, &fakeCategories{}, resumes, dir, discardLogger())

		_, err := service.ExportAll(context.Background())
		require.NoError(t, err)

		loader := static.NewLoader(dir, discardLogger())
		loadedPosts := loader.AllPosts()
		require.Len(t, loadedPosts, 1)
		assert.Empty(t, loadedPosts[0].Category)
	})
}
