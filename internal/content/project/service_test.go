// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package project

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/pkg/pointer"
)

type fakeRepository struct {
	projects map[string]*Project
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{projects: make(map[string]*Project)}
}

func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Project, int, error) {
	var matched []*Project
	for _, p := range f.projects {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
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
	_, total, err := f.List(context.Background(), filter, 0, 0)
	return total, err
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, apperr.NotFound("Project not found")
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Project not found")
}

func (f *fakeRepository) Create(_ context.Context, p *Project) error {
	clone := *p
	f.projects[p.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return apperr.NotFound("Project not found")
	}
	clone := *p
	f.projects[p.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return apperr.NotFound("Project not found")
	}
	delete(f.projects, id)
	return nil
}

func newTestService() *Service {
	return NewService(newFakeRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceCreate(t *testing.T) {
	t.Run("derives slug and normalizes technologies", func(t *testing.T) {
		service := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title:        "Distributed Task Queue",
			Description:  "A queue",
			Technologies: []string{" Go ", "", "PostgreSQL", "  "},
		})

		require.NoError(t, err)
		assert.Equal(t, "distributed-task-queue", created.Slug)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, created.Technologies)
	})

	t.Run("empty technology list stays non-nil", func(t *testing.T) {
		service := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title:       "Bare",
			Description: "No stack listed",
		})

		require.NoError(t, err)
		assert.NotNil(t, created.Technologies)
		assert.Empty(t, created.Technologies)
	})

	t.Run("rejects malformed links", func(t *testing.T) {
		service := newTestService()

		_, err := service.Create(context.Background(), CreateInput{
			Title:       "Broken",
			Description: "Bad URL",
			GithubURL:   "not a url",
		})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		service := newTestService()

		_, err := service.Create(context.Background(), CreateInput{Description: "orphan"})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestServiceUpdate(t *testing.T) {
	seed := func(t *testing.T) (*Service, *Project) {
		t.Helper()
		service := newTestService()
		created, err := service.Create(context.Background(), CreateInput{
			Title:        "Original",
			Description:  "Before",
			Technologies: []string{"Go"},
			Published:    true,
		})
		require.NoError(t, err)
		return service, created
	}

	t.Run("partial update preserves untouched fields", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			Description: pointer.To("After"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, "After", updated.Description)
		assert.True(t, updated.Published)
		assert.Equal(t, []string{"Go"}, updated.Technologies)
	})

	t.Run("nil technologies keeps existing stack", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			Featured: pointer.To(true),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, updated.Technologies)
		assert.True(t, updated.Featured)
	})

	t.Run("empty technologies clears the stack", func(t *testing.T) {
		service, created := seed(t)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			Technologies: []string{},
		})

		require.NoError(t, err)
		assert.Empty(t, updated.Technologies)
	})

	t.Run("unknown project yields not found", func(t *testing.T) {
		service, _ := seed(t)

		_, err := service.Update(context.Background(), "00000000-0000-0000-0000-000000000000", UpdateInput{})

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestServiceListFilters(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mustCreate := func(title string, featured, published bool) {
		_, err := service.Create(context.Background(), CreateInput{
			Title:       title,
			Description: "d",
			Featured:    featured,
			Published:   published,
		})
		require.NoError(t, err)
	}

	mustCreate("Alpha", true, true)
	mustCreate("Beta", false, true)
	mustCreate("Gamma", false, false)

	published, total, err := service.List(context.Background(), Filter{Published: pointer.To(true)}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, published, 2)

	featured, total, err := service.List(context.Background(), Filter{Featured: pointer.To(true)}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, featured, 1)
	assert.Equal(t, "Alpha", featured[0].Title)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"default_newest_first", Filter{}, " ORDER BY featured DESC, createdat DESC, id DESC"},
		{"title_ascending", Filter{OrderBy: "title", OrderDir: "asc"}, " ORDER BY featured DESC, title ASC, id DESC"},
		{"updated_at", Filter{OrderBy: "updated_at"}, " ORDER BY featured DESC, updatedat DESC, id DESC"},
		{"unknown_key_falls_back", Filter{OrderBy: "technologies; DROP TABLE"}, " ORDER BY featured DESC, createdat DESC, id DESC"},
		{"unknown_direction_falls_back", Filter{OrderDir: "sideways"}, " ORDER BY featured DESC, createdat DESC, id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.filter))
		})
	}
}
