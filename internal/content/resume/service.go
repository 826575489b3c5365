// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package resume

import (
	"context"
	"log/slog"

	"github.com/minhngo/folio/pkg/uuidv7"
)

// historyLimit caps how many revisions the history listing returns.
const historyLimit = 50

// Service orchestrates the résumé revision lifecycle.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Latest returns the current résumé revision.
func (service *Service) Latest(context context.Context) (*Revision, error) {
	return service.repo.Latest(context)
}

// History returns recent revisions, newest first.
func (service *Service) History(context context.Context) ([]*Revision, error) {
	return service.repo.List(context, historyLimit)
}

// Get returns a specific revision by ID.
func (service *Service) Get(context context.Context, id string) (*Revision, error) {
	return service.repo.FindByID(context, id)
}

/*
Update validates the document and appends it as a new immutable revision.

Description: A zero schema version is stamped with the current one so
clients never have to know it; any other mismatch is rejected. Earlier
revisions are kept untouched, so an accidental overwrite is always
recoverable.

Parameters:
  - context: context.Context
  - document: Document

Returns:
  - *Revision: The newly written revision
  - error: Validation failures or repository errors
*/
func (service *Service) Update(context context.Context, document Document) (*Revision, error) {
	if document.Version == 0 {
		document.Version = DocumentVersion
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	revision := &Revision{
		ID:       uuidv7.New(),
		Document: document,
	}

	if err := service.repo.Insert(context, revision); err != nil {
		return nil, err
	}

	service.logger.Info("resume_updated", slog.String("revision_id", revision.ID))

	return service.repo.FindByID(context, revision.ID)
}

// DeleteLatest drops the most recent revision, rolling the résumé back to
// the one before it. Deleting the only revision leaves no résumé at all.
func (service *Service) DeleteLatest(context context.Context) error {
	latest, err := service.repo.Latest(context)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, latest.ID); err != nil {
		return err
	}

	service.logger.Info("resume_revision_deleted", slog.String("revision_id", latest.ID))

	return nil
}
