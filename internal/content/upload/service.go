// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/blob"
	"github.com/minhngo/folio/internal/platform/constants"
	"github.com/minhngo/folio/internal/platform/validate"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// Service orchestrates file uploads: policy checks, blob storage, and the
// database record that ties them together.
type Service struct {
	repo   Repository
	blobs  blob.Store
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, blobs blob.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}

// List returns a page of upload records, optionally scoped to one folder.
func (service *Service) List(ctx context.Context, folder string, limit, offset int) ([]*File, int, error) {
	return service.repo.List(ctx, folder, limit, offset)
}

// Get returns a single upload record.
func (service *Service) Get(ctx context.Context, id string) (*File, error) {
	return service.repo.FindByID(ctx, id)
}

// Input describes one incoming file.
type Input struct {
	OriginalName string
	MimeType     string
	Size         int64
	Body         io.Reader
	Folder       string
}

/*
Upload validates, stores, and records one file.

Description: The MIME allow-list and the size ceiling are checked before the
body is streamed to the bucket. The object key is derived from a fresh UUID,
never from the client-supplied name, so uploads cannot collide or traverse
folders. If the database insert fails after the object was stored, the
object is removed again on a best-effort basis.

Parameters:
  - ctx: context.Context
  - input: Input
  - uploaderID: string (account ID of the authenticated uploader)

Returns:
  - *File: The stored upload record
  - error: apperr.ValidationError, apperr.Upstream (blob storage), or repository errors
*/
func (service *Service) Upload(ctx context.Context, input Input, uploaderID string) (*File, error) {
	// ── 1. Policy checks before any byte leaves the process ────────
	extension, ok := ExtensionFor(input.MimeType)
	if !ok {
		return nil, validate.RequiredError("file", fmt.Sprintf("Unsupported file type %q", input.MimeType))
	}

	if input.Size <= 0 {
		return nil, validate.RequiredError("file", "File is empty")
	}
	if input.Size > constants.MaxUploadSize {
		return nil, validate.RequiredError("file", fmt.Sprintf(
			"File exceeds the %d MiB limit", constants.MaxUploadSize>>20,
		))
	}

	folder := SanitizeFolder(input.Folder)
	filename := uuidv7.New() + extension
	key := folder + "/" + filename

	// ── 2. Stream to the bucket ────────────────────────────────────
	// The limit guards against a body longer than the declared size.
	body := io.LimitReader(input.Body, constants.MaxUploadSize)
	if err := service.blobs.Put(ctx, key, input.MimeType, body); err != nil {
		return nil, apperr.Upstream("blob storage", err)
	}

	// ── 3. Record the upload ───────────────────────────────────────
	file := &File{
		ID:           uuidv7.New(),
		Filename:     filename,
		OriginalName: input.OriginalName,
		Key:          key,
		Folder:       folder,
		URL:          service.blobs.PublicURL(key),
		Size:         input.Size,
		MimeType:     input.MimeType,
		UploaderID:   uploaderID,
	}

	if err := service.repo.Insert(ctx, file); err != nil {
		// Avoid orphaned objects when the record cannot be written.
		if delErr := service.blobs.Delete(ctx, key); delErr != nil {
			service.logger.Error("upload_orphan_cleanup_failed",
				slog.String("key", key),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, err
	}

	service.logger.Info("file_uploaded",
		slog.String("file_id", file.ID),
		slog.String("key", key),
		slog.Int64("size", file.Size),
	)

	return file, nil
}

/*
Delete removes one upload: the stored object first, then the record.

Description: A missing object in the bucket does not block deletion of the
record; blob storage failures other than that are surfaced so the record
keeps pointing at the still-existing object.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - error: apperr.NotFound, apperr.Upstream, or repository errors
*/
func (service *Service) Delete(ctx context.Context, id string) error {
	file, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.blobs.Delete(ctx, file.Key); err != nil {
		return apperr.Upstream("blob storage", err)
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("file_deleted", slog.String("file_id", id), slog.String("key", file.Key))

	return nil
}

/*
DeleteBatch removes many uploads at once, best effort.

Description: Object deletion uses the bucket's batch API; keys the bucket
reports as failed keep their database records so nothing dangles. The
returned count is the number of records actually removed.

Parameters:
  - ctx: context.Context
  - ids: []string

Returns:
  - int: Number of uploads fully removed
  - error: Repository or blob storage errors
*/
func (service *Service) DeleteBatch(ctx context.Context, ids []string) (int, error) {
	files, err := service.repo.FindByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(files))
	keyToID := make(map[string]string, len(files))
	for _, file := range files {
		keys = append(keys, file.Key)
		keyToID[file.Key] = file.ID
	}

	failedKeys, err := service.blobs.DeleteBatch(ctx, keys)
	if err != nil {
		return 0, apperr.Upstream("blob storage", err)
	}

	failed := make(map[string]bool, len(failedKeys))
	for _, key := range failedKeys {
		failed[key] = true
		service.logger.Error("file_batch_delete_failed", slog.String("key", key))
	}

	deletable := make([]string, 0, len(files))
	for _, file := range files {
		if !failed[file.Key] {
			deletable = append(deletable, file.ID)
		}
	}

	deleted, err := service.repo.DeleteBatch(ctx, deletable)
	if err != nil {
		return 0, err
	}

	service.logger.Warn("files_deleted", slog.Int("count", deleted))

	return deleted, nil
}
