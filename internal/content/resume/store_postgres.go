// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/database/schema"
	"github.com/minhngo/folio/internal/platform/dberr"
)

// postgresRepository implements [Repository]; the document lives in a JSONB
// column and is decoded and validated on every read.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed résumé store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// scanRevision decodes one row. A document that fails to decode or validate
// is reported, never papered over with an empty default.
func scanRevision(row pgx.Row) (*Revision, error) {
	revision := &Revision{}
	var raw []byte

	if err := row.Scan(&revision.ID, &raw, &revision.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &revision.Document); err != nil {
		return nil, fmt.Errorf("resume: corrupt document %s: %w", revision.ID, err)
	}
	if err := revision.Document.Validate(); err != nil {
		return nil, fmt.Errorf("resume: stored document %s failed validation: %w", revision.ID, err)
	}

	return revision, nil
}

// Latest returns the most recent revision.
func (repository *postgresRepository) Latest(ctx context.Context) (*Revision, error) {
	r := schema.ContentResume
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s ORDER BY %s DESC LIMIT 1",
		r.ID, r.Data, r.CreatedAt, r.Table, r.CreatedAt,
	)

	revision, err := scanRevision(repository.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("No resume has been saved yet")
		}
		return nil, err
	}

	return revision, nil
}

// List returns up to limit revisions, newest first.
func (repository *postgresRepository) List(ctx context.Context, limit int) ([]*Revision, error) {
	r := schema.ContentResume
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s ORDER BY %s DESC LIMIT $1",
		r.ID, r.Data, r.CreatedAt, r.Table, r.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list resume revisions")
	}
	defer rows.Close()

	var revisions []*Revision
	for rows.Next() {
		revision, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, revision)
	}

	return revisions, rows.Err()
}

// FindByID returns a specific revision.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Revision, error) {
	r := schema.ContentResume
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = $1",
		r.ID, r.Data, r.CreatedAt, r.Table, r.ID,
	)

	revision, err := scanRevision(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Resume revision not found")
		}
		return nil, err
	}

	return revision, nil
}

// Insert appends a new revision.
func (repository *postgresRepository) Insert(ctx context.Context, revision *Revision) error {
	raw, err := json.Marshal(revision.Document)
	if err != nil {
		return fmt.Errorf("resume: failed to encode document: %w", err)
	}

	r := schema.ContentResume
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW())",
		r.Table, r.ID, r.Data, r.CreatedAt,
	)

	if _, err := repository.pool.Exec(ctx, query, revision.ID, raw); err != nil {
		return dberr.Wrap(err, "insert resume revision")
	}

	return nil
}

// Delete removes a single revision.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	r := schema.ContentResume
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.Table, r.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete resume revision")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Resume revision not found")
	}

	return nil
}
