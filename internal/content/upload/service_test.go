// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/constants"
)

// fakeBlobStore is an in-memory blob.Store.
type fakeBlobStore struct {
	objects    map[string][]byte
	putErr     error
	failedKeys []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobStore) DeleteBatch(_ context.Context, keys []string) ([]string, error) {
	failed := make(map[string]bool)
	for _, key := range f.failedKeys {
		failed[key] = true
	}
	var stillFailed []string
	for _, key := range keys {
		if failed[key] {
			stillFailed = append(stillFailed, key)
			continue
		}
		delete(f.objects, key)
	}
	return stillFailed, nil
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// fakeRepository is an in-memory upload record store.
type fakeRepository struct {
	files     map[string]*File
	insertErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{files: make(map[string]*File)}
}

func (f *fakeRepository) List(_ context.Context, folder string, limit, offset int) ([]*File, int, error) {
	var matched []*File
	for _, file := range f.files {
		if folder != "" && file.Folder != folder {
			continue
		}
		matched = append(matched, file)
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*File, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, apperr.NotFound("Upload not found")
	}
	return file, nil
}

func (f *fakeRepository) FindByIDs(_ context.Context, ids []string) ([]*File, error) {
	var files []*File
	for _, id := range ids {
		if file, ok := f.files[id]; ok {
			files = append(files, file)
		}
	}
	return files, nil
}

func (f *fakeRepository) Insert(_ context.Context, file *File) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	clone := *file
	f.files[file.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.files[id]; !ok {
		return apperr.NotFound("Upload not found")
	}
	delete(f.files, id)
	return nil
}

func (f *fakeRepository) DeleteBatch(_ context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if _, ok := f.files[id]; ok {
			delete(f.files, id)
			deleted++
		}
	}
	return deleted, nil
}

func newTestService(repo *fakeRepository, blobs *fakeBlobStore) *Service {
	return NewService(repo, blobs, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() Input {
	return Input{
		OriginalName: "avatar.png",
		MimeType:     "image/png",
		Size:         4,
		Body:         strings.NewReader("data"),
		Folder:       "images",
	}
}

func TestServiceUpload(t *testing.T) {
	t.Run("stores object and record", func(t *testing.T) {
		repo := newFakeRepository()
		blobs := newFakeBlobStore()
		service := newTestService(repo, blobs)

		file, err := service.Upload(context.Background(), validInput(), "admin-1")

		require.NoError(t, err)
		assert.Equal(t, "avatar.png", file.OriginalName)
		assert.Equal(t, "images", file.Folder)
		assert.Equal(t, "admin-1", file.UploaderID)
		assert.True(t, strings.HasSuffix(file.Filename, ".png"))
		assert.Equal(t, "https://cdn.example.com/"+file.Key, file.URL)
		assert.Contains(t, blobs.objects, file.Key)
		assert.Len(t, repo.files, 1)
	})

	t.Run("rejects disallowed mime type before touching storage", func(t *testing.T) {
		blobs := newFakeBlobStore()
		service := newTestService(newFakeRepository(), blobs)

		input := validInput()
		input.MimeType = "application/x-msdownload"

		_, err := service.Upload(context.Background(), input, "admin-1")

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Empty(t, blobs.objects)
	})

	t.Run("rejects oversized file before touching storage", func(t *testing.T) {
		blobs := newFakeBlobStore()
		service := newTestService(newFakeRepository(), blobs)

		input := validInput()
		input.Size = constants.MaxUploadSize + 1

		_, err := service.Upload(context.Background(), input, "admin-1")

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Empty(t, blobs.objects)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		service := newTestService(newFakeRepository(), newFakeBlobStore())

		input := validInput()
		input.Size = 0

		_, err := service.Upload(context.Background(), input, "admin-1")

		require.Error(t, err)
	})

	t.Run("storage failure surfaces as upstream error", func(t *testing.T) {
		blobs := newFakeBlobStore()
		blobs.putErr = errors.New("bucket unreachable")
		service := newTestService(newFakeRepository(), blobs)

		_, err := service.Upload(context.Background(), validInput(), "admin-1")

		require.Error(t, err)
		assert.Equal(t, "UPSTREAM_FAILURE", apperr.As(err).Code)
	})

	t.Run("record failure cleans up the stored object", func(t *testing.T) {
		repo := newFakeRepository()
		repo.insertErr = errors.New("db down")
		blobs := newFakeBlobStore()
		service := newTestService(repo, blobs)

		_, err := service.Upload(context.Background(), validInput(), "admin-1")

		require.Error(t, err)
		assert.Empty(t, blobs.objects)
	})

	t.Run("folder traversal collapses to the default", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, newFakeBlobStore())

		input := validInput()
		input.Folder = "../../etc"

		file, err := service.Upload(context.Background(), input, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, DefaultFolder, file.Folder)
	})
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeRepository()
	blobs := newFakeBlobStore()
	service := newTestService(repo, blobs)

	file, err := service.Upload(context.Background(), validInput(), "admin-1")
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), file.ID))
	assert.Empty(t, blobs.objects)
	assert.Empty(t, repo.files)

	err = service.Delete(context.Background(), file.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestServiceDeleteBatch(t *testing.T) {
	t.Run("removes all objects and records", func(t *testing.T) {
		repo := newFakeRepository()
		blobs := newFakeBlobStore()
		service := newTestService(repo, blobs)

		first, err := service.Upload(context.Background(), validInput(), "admin-1")
		require.NoError(t, err)
		second, err := service.Upload(context.Background(), validInput(), "admin-1")
		require.NoError(t, err)

		deleted, err := service.DeleteBatch(context.Background(), []string{first.ID, second.ID})

		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
		assert.Empty(t, repo.files)
	})

	t.Run("keeps the record when the bucket refuses the key", func(t *testing.T) {
		repo := newFakeRepository()
		blobs := newFakeBlobStore()
		service := newTestService(repo, blobs)

		first, err := service.Upload(context.Background(), validInput(), "admin-1")
		require.NoError(t, err)
		second, err := service.Upload(context.Background(), validInput(), "admin-1")
		require.NoError(t, err)

		blobs.failedKeys = []string{first.Key}

		deleted, err := service.DeleteBatch(context.Background(), []string{first.ID, second.ID})

		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
		assert.Contains(t, repo.files, first.ID)
		assert.NotContains(t, repo.files, second.ID)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		service := newTestService(newFakeRepository(), newFakeBlobStore())

		deleted, err := service.DeleteBatch(context.Background(), []string{"missing"})

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestSanitizeFolder(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   string
	}{
		{"plain_name", "avatars", "avatars"},
		{"surrounding_slashes", "/covers/", "covers"},
		{"empty", "", DefaultFolder},
		{"dot", ".", DefaultFolder},
		{"parent_traversal", "../../etc", DefaultFolder},
		{"hidden_traversal", "safe/../etc", DefaultFolder},
		{"nested_path", "a/b", DefaultFolder},
		{"backslash_path", `a\b`, DefaultFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFolder(tt.folder))
		})
	}
}
