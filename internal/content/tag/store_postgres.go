// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package tag

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/database/schema"
	"github.com/minhngo/folio/internal/platform/dberr"
)

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed tag store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// tagSelect is the shared projection including the live post count.
func tagSelect() string {
	t := schema.ContentTag
	pt := schema.ContentPostTag
	return fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s,
			(SELECT COUNT(*) FROM %s pt WHERE pt.%s = t.%s) AS post_count
		FROM %s t`,
		t.ID, t.Name, t.Slug, t.CreatedAt,
		pt.Table, pt.TagID, t.ID,
		t.Table,
	)
}

func scanTag(row pgx.Row) (*Tag, error) {
	tag := &Tag{}
	err := row.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.CreatedAt, &tag.PostCount)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (repository *postgresRepository) List(context context.Context) ([]*Tag, error) {
	query := tagSelect() + fmt.Sprintf(" ORDER BY t.%s ASC", schema.ContentTag.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan tag")
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Tag, error) {
	query := tagSelect() + fmt.Sprintf(" WHERE t.%s = $1", schema.ContentTag.ID)

	tag, err := scanTag(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Tag not found")
		}
		return nil, dberr.Wrap(err, "find tag by id")
	}

	return tag, nil
}

func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Tag, error) {
	query := tagSelect() + fmt.Sprintf(" WHERE t.%s = $1", schema.ContentTag.Slug)

	tag, err := scanTag(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Tag not found")
		}
		return nil, dberr.Wrap(err, "find tag by slug")
	}

	return tag, nil
}

func (repository *postgresRepository) Create(context context.Context, tag *Tag) error {
	t := schema.ContentTag
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)`,
		t.Table, t.ID, t.Name, t.Slug, t.CreatedAt,
	)

	tag.CreatedAt = time.Now()

	_, err := repository.pool.Exec(context, query, tag.ID, tag.Name, tag.Slug, tag.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create tag")
	}

	return nil
}

func (repository *postgresRepository) Update(context context.Context, tag *Tag) error {
	t := schema.ContentTag
	query := fmt.Sprintf("UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1", t.Table, t.Name, t.Slug, t.ID)

	result, err := repository.pool.Exec(context, query, tag.ID, tag.Name, tag.Slug)
	if err != nil {
		return dberr.Wrap(err, "update tag")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Tag not found")
	}

	return nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentTag
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Table, t.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete tag")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Tag not found")
	}

	return nil
}

func (repository *postgresRepository) CountPosts(context context.Context, id string) (int, error) {
	pt := schema.ContentPostTag
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", pt.Table, pt.TagID)

	var count int
	if err := repository.pool.QueryRow(context, query, id).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count posts with tag")
	}

	return count, nil
}
