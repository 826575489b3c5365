// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package resume

import "context"

// Repository defines the data access contract for résumé revisions.
type Repository interface {
	// Latest returns the most recent revision, or apperr.NotFound when no
	// résumé has ever been saved.
	Latest(ctx context.Context) (*Revision, error)

	// List returns up to limit revisions, newest first.
	List(ctx context.Context, limit int) ([]*Revision, error)

	// FindByID returns a specific revision, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*Revision, error)

	// Insert appends a new revision. Revisions are immutable once written.
	Insert(ctx context.Context, revision *Revision) error

	// Delete removes a revision, or apperr.NotFound when it does not exist.
	Delete(ctx context.Context, id string) error
}
