// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package category

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

// NewRepository constructs a PostgreSQL backed category store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// categorySelect is the shared projection including the live post count.
func categorySelect() string {
	c := schema.ContentCategory
	p := schema.ContentPost
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			(SELECT COUNT(*) FROM %s p WHERE p.%s = c.%s) AS post_count
		FROM %s c`,
		c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
		p.Table, p.CategoryID, c.ID,
		c.Table,
	)
}

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.PostCount,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (repository *postgresRepository) List(context context.Context) ([]*Category, error) {
	query := categorySelect() + fmt.Sprintf(" ORDER BY c.%s ASC", schema.ContentCategory.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan category")
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	query := categorySelect() + fmt.Sprintf(" WHERE c.%s = $1", schema.ContentCategory.ID)

	category, err := scanCategory(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, dberr.Wrap(err, "find category by id")
	}

	return category, nil
}

func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	query := categorySelect() + fmt.Sprintf(" WHERE c.%s = $1", schema.ContentCategory.Slug)

	category, err := scanCategory(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, dberr.Wrap(err, "find category by slug")
	}

	return category, nil
}

func (repository *postgresRepository) Create(context context.Context, category *Category) error {
	c := schema.ContentCategory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.Table, c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	)

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create category")
	}

	return nil
}

func (repository *postgresRepository) Update(context context.Context, category *Category) error {
	c := schema.ContentCategory
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1`,
		c.Table, c.Name, c.Slug, c.Description, c.UpdatedAt, c.ID,
	)

	category.UpdatedAt = time.Now()

	result, err := repository.pool.Exec(context, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update category")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category not found")
	}

	return nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	c := schema.ContentCategory
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", c.Table, c.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete category")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category not found")
	}

	return nil
}

func (repository *postgresRepository) CountPosts(context context.Context, id string) (int, error) {
	p := schema.ContentPost
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", p.Table, p.CategoryID)

	var count int
	if err := repository.pool.QueryRow(context, query, id).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count posts in category")
	}

	return count, nil
}
