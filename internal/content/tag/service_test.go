// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package tag_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/platform/apperr"
)

// fakeRepository is an in-memory tag Repository.
type fakeRepository struct {
	tags       map[string]*tag.Tag
	postCounts map[string]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tags:       map[string]*tag.Tag{},
		postCounts: map[string]int{},
	}
}

func (repo *fakeRepository) List(_ context.Context) ([]*tag.Tag, error) {
	var result []*tag.Tag
	for _, t := range repo.tags {
		result = append(result, t)
	}
	return result, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*tag.Tag, error) {
	if t, ok := repo.tags[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Tag not found")
}

func (repo *fakeRepository) FindBySlug(_ context.Context, slug string) (*tag.Tag, error) {
	for _, t := range repo.tags {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Tag not found")
}

func (repo *fakeRepository) Create(_ context.Context, t *tag.Tag) error {
	repo.tags[t.ID] = t
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, t *tag.Tag) error {
	repo.tags[t.ID] = t
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.tags, id)
	return nil
}

func (repo *fakeRepository) CountPosts(_ context.Context, id string) (int, error) {
	return repo.postCounts[id], nil
}

func newTestService() (*tag.Service, *fakeRepository) {
	repo := newFakeRepository()
	return tag.NewService(repo, slog.Default()), repo
}

func TestService_Create(t *testing.T) {
	service, _ := newTestService()

	t.Run("slug_generated_from_name", func(t *testing.T) {
		created, err := service.Create(context.Background(), tag.CreateInput{Name: "Distributed Systems"})
		require.NoError(t, err)
		assert.Equal(t, "distributed-systems", created.Slug)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), tag.CreateInput{Name: "  "})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_Delete_DependentGuard(t *testing.T) {
	service, repo := newTestService()

	created, err := service.Create(context.Background(), tag.CreateInput{Name: "Go"})
	require.NoError(t, err)

	repo.postCounts[created.ID] = 1
	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "HAS_DEPENDENTS", apperr.As(err).Code)

	repo.postCounts[created.ID] = 0
	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.NotContains(t, repo.tags, created.ID)
}
