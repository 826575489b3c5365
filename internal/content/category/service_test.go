// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package category_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/platform/apperr"
)

// fakeRepository is an in-memory category Repository.
type fakeRepository struct {
	categories map[string]*category.Category
	postCounts map[string]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: map[string]*category.Category{},
		postCounts: map[string]int{},
	}
}

func (repo *fakeRepository) List(_ context.Context) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range repo.categories {
		result = append(result, c)
	}
	return result, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*category.Category, error) {
	if c, ok := repo.categories[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Category not found")
}

func (repo *fakeRepository) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range repo.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Category not found")
}

func (repo *fakeRepository) Create(_ context.Context, c *category.Category) error {
	repo.categories[c.ID] = c
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, c *category.Category) error {
	repo.categories[c.ID] = c
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.categories, id)
	return nil
}

func (repo *fakeRepository) CountPosts(_ context.Context, id string) (int, error) {
	return repo.postCounts[id], nil
}

func newTestService() (*category.Service, *fakeRepository) {
	repo := newFakeRepository()
	return category.NewService(repo, slog.Default()), repo
}

func TestService_Create(t *testing.T) {
	service, _ := newTestService()

	t.Run("slug_generated_from_name", func(t *testing.T) {
		created, err := service.Create(context.Background(), category.CreateInput{Name: "Systems Programming"})
		require.NoError(t, err)
		assert.Equal(t, "systems-programming", created.Slug)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("explicit_slug_kept", func(t *testing.T) {
		created, err := service.Create(context.Background(), category.CreateInput{Name: "Go", Slug: "golang"})
		require.NoError(t, err)
		assert.Equal(t, "golang", created.Slug)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), category.CreateInput{Name: ""})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_Update_PartialFields(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), category.CreateInput{
		Name:        "Databases",
		Description: "Storage engines",
	})
	require.NoError(t, err)

	newName := "Data Stores"
	updated, err := service.Update(context.Background(), created.ID, category.UpdateInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Data Stores", updated.Name)
	// Untouched fields survive the partial update
	assert.Equal(t, "databases", updated.Slug)
	assert.Equal(t, "Storage engines", updated.Description)
}

func TestService_Delete_DependentGuard(t *testing.T) {
	service, repo := newTestService()

	created, err := service.Create(context.Background(), category.CreateInput{Name: "Networking"})
	require.NoError(t, err)

	// Category with posts cannot be deleted
	repo.postCounts[created.ID] = 3
	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "HAS_DEPENDENTS", apperr.As(err).Code)
	assert.Contains(t, repo.categories, created.ID)

	// Once free of posts, deletion succeeds
	repo.postCounts[created.ID] = 0
	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.NotContains(t, repo.categories, created.ID)
}

func TestService_Delete_Missing(t *testing.T) {
	service, _ := newTestService()

	err := service.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
