// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/database/schema"
	"github.com/minhngo/folio/internal/platform/dberr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed upload record store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func fileColumns() string {
	return strings.Join(schema.ContentFile.Columns(), ", ")
}

func scanFile(row pgx.Row, totalCount *int) (*File, error) {
	file := &File{}

	dest := []any{
		&file.ID,
		&file.Filename,
		&file.OriginalName,
		&file.Key,
		&file.Folder,
		&file.URL,
		&file.Size,
		&file.MimeType,
		&file.UploaderID,
		&file.CreatedAt,
	}
	if totalCount != nil {
		dest = append(dest, totalCount)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	return file, nil
}

// List returns a page of upload records, newest first.
func (repository *postgresRepository) List(ctx context.Context, folder string, limit, offset int) ([]*File, int, error) {
	f := schema.ContentFile

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE TRUE",
		fileColumns(), f.Table,
	))

	var args []any
	if folder != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $1", f.Folder))
		args = append(args, folder)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC", f.CreatedAt))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list uploads")
	}
	defer rows.Close()

	var files []*File
	var totalCount int

	for rows.Next() {
		file, err := scanFile(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan upload")
		}
		files = append(files, file)
	}

	return files, totalCount, rows.Err()
}

// FindByID returns the upload record with the given primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*File, error) {
	f := schema.ContentFile
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", fileColumns(), f.Table, f.ID)

	file, err := scanFile(repository.pool.QueryRow(ctx, query, id), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Upload not found")
		}
		return nil, dberr.Wrap(err, "find upload")
	}

	return file, nil
}

// FindByIDs returns the records for the given IDs; unknown IDs are skipped.
func (repository *postgresRepository) FindByIDs(ctx context.Context, ids []string) ([]*File, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	f := schema.ContentFile
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1)", fileColumns(), f.Table, f.ID)

	rows, err := repository.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "find uploads")
	}
	defer rows.Close()

	var files []*File
	for rows.Next() {
		file, err := scanFile(rows, nil)
		if err != nil {
			return nil, dberr.Wrap(err, "scan upload")
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// Insert persists a new upload record.
func (repository *postgresRepository) Insert(ctx context.Context, file *File) error {
	f := schema.ContentFile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		f.Table, fileColumns(),
	)

	_, err := repository.pool.Exec(ctx, query,
		file.ID,
		file.Filename,
		file.OriginalName,
		file.Key,
		file.Folder,
		file.URL,
		file.Size,
		file.MimeType,
		file.UploaderID,
	)

	return dberr.Wrap(err, "insert upload")
}

// Delete removes an upload record.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	f := schema.ContentFile
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", f.Table, f.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete upload")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Upload not found")
	}

	return nil
}

// DeleteBatch removes the records with the given IDs.
func (repository *postgresRepository) DeleteBatch(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	f := schema.ContentFile
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", f.Table, f.ID)

	result, err := repository.pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete uploads")
	}

	return int(result.RowsAffected()), nil
}
