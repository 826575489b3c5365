// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package post

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/pkg/pointer"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	posts map[string]*Post
	tags  map[string][]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		posts: make(map[string]*Post),
		tags:  make(map[string][]string),
	}
}

func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	var matched []*Post
	for _, p := range f.posts {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, f.hydrate(p))
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) Count(_ context.Context, filter Filter) (int, error) {
	count := 0
	for _, p := range f.posts {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	return f.hydrate(p), nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return f.hydrate(p), nil
		}
	}
	return nil, apperr.NotFound("Post not found")
}

func (f *fakeRepository) Create(_ context.Context, p *Post, tagIDs []string) error {
	clone := *p
	f.posts[p.ID] = &clone
	if len(tagIDs) > 0 {
		f.tags[p.ID] = append([]string(nil), tagIDs...)
	}
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *Post, tagIDs []string) error {
	if _, ok := f.posts[p.ID]; !ok {
		return apperr.NotFound("Post not found")
	}
	clone := *p
	f.posts[p.ID] = &clone
	if tagIDs != nil {
		f.tags[p.ID] = append([]string(nil), tagIDs...)
	}
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Post not found")
	}
	delete(f.posts, id)
	delete(f.tags, id)
	return nil
}

// hydrate copies the stored row and attaches its tag references, mimicking
// the JSON aggregation done by the real store.
func (f *fakeRepository) hydrate(p *Post) *Post {
	clone := *p
	clone.Tags = nil
	for _, tagID := range f.tags[p.ID] {
		clone.Tags = append(clone.Tags, TagRef{ID: tagID, Name: "tag-" + tagID, Slug: "tag-" + tagID})
	}
	return &clone
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceCreate(t *testing.T) {
	t.Run("derives slug from title when omitted", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		created, err := service.Create(context.Background(), CreateInput{
			Title:   "Hello, World! My First Post",
			Content: "body",
		}, "author-1")

		require.NoError(t, err)
		assert.Equal(t, "hello-world-my-first-post", created.Slug)
		assert.Equal(t, "author-1", created.AuthorID)
	})

	t.Run("draft has no publication timestamp", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		created, err := service.Create(context.Background(), CreateInput{
			Title:   "Draft",
			Content: "body",
		}, "author-1")

		require.NoError(t, err)
		assert.False(t, created.Published)
		assert.Nil(t, created.PublishedAt)
	})

	t.Run("publishing at creation stamps the timestamp", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return fixed }

		created, err := service.Create(context.Background(), CreateInput{
			Title:     "Live",
			Content:   "body",
			Published: true,
		}, "author-1")

		require.NoError(t, err)
		require.NotNil(t, created.PublishedAt)
		assert.Equal(t, fixed, *created.PublishedAt)
	})

	t.Run("rejects missing title and content", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		_, err := service.Create(context.Background(), CreateInput{}, "author-1")

		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("create with tags hydrates tag references", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		created, err := service.Create(context.Background(), CreateInput{
			Title:   "Tagged",
			Content: "body",
			TagIDs:  []string{"t1", "t2"},
		}, "author-1")

		require.NoError(t, err)
		require.Len(t, created.Tags, 2)
		assert.Equal(t, "t1", created.Tags[0].ID)
	})
}

func TestServiceUpdatePublicationTimestamp(t *testing.T) {
	seed := func(t *testing.T) (*Service, *fakeRepository, *Post) {
		t.Helper()
		repo := newFakeRepository()
		service := newTestService(repo)
		created, err := service.Create(context.Background(), CreateInput{
			Title:   "Lifecycle",
			Content: "body",
		}, "author-1")
		require.NoError(t, err)
		return service, repo, created
	}

	t.Run("first publish stamps the timestamp", func(t *testing.T) {
		service, _, draft := seed(t)
		fixed := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return fixed }

		updated, err := service.Update(context.Background(), draft.ID, UpdateInput{
			Published: pointer.To(true),
		})

		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.Equal(t, fixed, *updated.PublishedAt)
	})

	t.Run("unpublishing keeps the original timestamp", func(t *testing.T) {
		service, _, draft := seed(t)
		published, err := service.Update(context.Background(), draft.ID, UpdateInput{
			Published: pointer.To(true),
		})
		require.NoError(t, err)
		original := *published.PublishedAt

		unpublished, err := service.Update(context.Background(), draft.ID, UpdateInput{
			Published: pointer.To(false),
		})

		require.NoError(t, err)
		assert.False(t, unpublished.Published)
		require.NotNil(t, unpublished.PublishedAt)
		assert.Equal(t, original, *unpublished.PublishedAt)
	})

	t.Run("republishing does not move the timestamp", func(t *testing.T) {
		service, _, draft := seed(t)
		first := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return first }

		_, err := service.Update(context.Background(), draft.ID, UpdateInput{Published: pointer.To(true)})
		require.NoError(t, err)
		_, err = service.Update(context.Background(), draft.ID, UpdateInput{Published: pointer.To(false)})
		require.NoError(t, err)

		service.now = func() time.Time { return first.Add(72 * time.Hour) }
		republished, err := service.Update(context.Background(), draft.ID, UpdateInput{Published: pointer.To(true)})

		require.NoError(t, err)
		require.NotNil(t, republished.PublishedAt)
		assert.Equal(t, first, *republished.PublishedAt)
	})
}

func TestServiceUpdateTags(t *testing.T) {
	seed := func(t *testing.T) (*Service, *Post) {
		t.Helper()
		service := newTestService(newFakeRepository())
		created, err := service.Create(context.Background(), CreateInput{
			Title:   "Tagged",
			Content: "body",
			TagIDs:  []string{"t1", "t2"},
		}, "author-1")
		require.NoError(t, err)
		return service, created
	}

	t.Run("nil tag list leaves links untouched", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			Title: pointer.To("Renamed"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Len(t, updated.Tags, 2)
	})

	t.Run("empty tag list clears all links", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			TagIDs: []string{},
		})

		require.NoError(t, err)
		assert.Empty(t, updated.Tags)
	})

	t.Run("new tag list replaces links", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			TagIDs: []string{"t3"},
		})

		require.NoError(t, err)
		require.Len(t, updated.Tags, 1)
		assert.Equal(t, "t3", updated.Tags[0].ID)
	})
}

func TestServiceUpdateCategory(t *testing.T) {
	service := newTestService(newFakeRepository())
	created, err := service.Create(context.Background(), CreateInput{
		Title:      "Categorized",
		Content:    "body",
		CategoryID: pointer.To("cat-1"),
	}, "author-1")
	require.NoError(t, err)
	require.NotNil(t, created.CategoryID)

	// Empty string detaches the category.
	updated, err := service.Update(context.Background(), created.ID, UpdateInput{
		CategoryID: pointer.To(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
}

func TestServiceDelete(t *testing.T) {
	service := newTestService(newFakeRepository())
	created, err := service.Create(context.Background(), CreateInput{
		Title:   "Ephemeral",
		Content: "body",
	}, "author-1")
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
