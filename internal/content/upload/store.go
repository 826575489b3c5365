// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package upload

import "context"

// Repository defines the data access contract for upload records.
type Repository interface {
	// List returns a page of upload records, newest first, plus the total count.
	List(ctx context.Context, folder string, limit, offset int) ([]*File, int, error)

	// FindByID returns the upload record, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*File, error)

	// FindByIDs returns the records for the given IDs; missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*File, error)

	// Insert persists a new upload record.
	Insert(ctx context.Context, file *File) error

	// Delete removes an upload record, or apperr.NotFound.
	Delete(ctx context.Context, id string) error

	// DeleteBatch removes the records with the given IDs and reports how many
	// rows were actually deleted.
	DeleteBatch(ctx context.Context, ids []string) (int, error)
}
