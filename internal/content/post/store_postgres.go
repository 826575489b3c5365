// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/database/schema"
	"github.com/minhngo/folio/internal/platform/dberr"
)

/*
postgresRepository implements [Repository] using pgx.

It leans on a few PostgreSQL features to keep reads to a single round-trip:
  - JSON Aggregation: Associated tags are folded into a JSON array per row.
  - Window Functions: COUNT(*) OVER() yields the total without a second query.
  - ACID Transactions: Post writes and tag junction sync commit atomically.
*/
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed post store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// tagAggregate builds the json_agg sub-query folding tags into each post row.
func tagAggregate() string {
	t := schema.ContentTag
	pt := schema.ContentPostTag
	p := schema.ContentPost
	return fmt.Sprintf(`
		COALESCE((
			SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s, 'slug', t.%s))
			FROM %s t
			JOIN %s pt ON t.%s = pt.%s
			WHERE pt.%s = p.%s
		), '[]')`,
		t.ID, t.Name, t.Slug,
		t.Table, pt.Table, t.ID, pt.TagID,
		pt.PostID, p.ID,
	)
}

// applyFilter appends WHERE conditions for the given filter and returns the args.
func applyFilter(queryBuilder *strings.Builder, filter Filter, args []any) []any {
	p := schema.ContentPost
	pt := schema.ContentPostTag
	argID := len(args) + 1

	queryBuilder.WriteString(" WHERE TRUE")

	if filter.Published != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.Published, argID))
		args = append(args, *filter.Published)
		argID++
	}

	if filter.CategoryID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.CategoryID, argID))
		args = append(args, filter.CategoryID)
		argID++
	}

	if filter.TagID != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s pt WHERE pt.%s = p.%s AND pt.%s = $%d)",
			pt.Table, pt.PostID, p.ID, pt.TagID, argID,
		))
		args = append(args, filter.TagID)
		argID++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (p.%s ILIKE $%d OR p.%s ILIKE $%d OR p.%s ILIKE $%d)",
			p.Title, argID, p.Excerpt, argID, p.Content, argID,
		))
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	return args
}

// orderClause maps the whitelisted sort keys onto physical columns.
// Unknown keys fall back to the publication date.
func orderClause(filter Filter) string {
	p := schema.ContentPost

	column := p.PublishedAt
	switch filter.OrderBy {
	case "created_at":
		column = p.CreatedAt
	case "updated_at":
		column = p.UpdatedAt
	case "title":
		column = p.Title
	case "published_at", "":
		column = p.PublishedAt
	}

	direction := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		direction = "ASC"
	}

	// Drafts have no publication date; keep them after dated rows.
	return fmt.Sprintf(" ORDER BY p.%s %s NULLS LAST, p.%s DESC", column, direction, p.ID)
}

/*
List returns a filtered, paginated slice of posts and the total count.

Description: A single query covers rows, tag hydration (JSON aggregation),
and the total count (window function).

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Post: Hydrated posts
  - int: Total count matching the filter
  - error: Execution errors
*/
func (repository *postgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	p := schema.ContentPost

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			COUNT(*) OVER() AS total_count,
			%s AS tags
		FROM %s p`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.PublishedAt,
		p.AuthorID, p.CategoryID, p.CreatedAt, p.UpdatedAt,
		tagAggregate(),
		p.Table,
	))

	var args []any
	args = applyFilter(&queryBuilder, filter, args)

	queryBuilder.WriteString(orderClause(filter))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list posts")
	}
	defer rows.Close()

	var posts []*Post
	var totalCount int

	for rows.Next() {
		post := &Post{}
		var tagsJSON []byte

		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Content,
			&post.Published,
			&post.PublishedAt,
			&post.AuthorID,
			&post.CategoryID,
			&post.CreatedAt,
			&post.UpdatedAt,
			&totalCount,
			&tagsJSON,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan post")
		}

		if err := json.Unmarshal(tagsJSON, &post.Tags); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal post tags: %w", err)
		}

		posts = append(posts, post)
	}

	return posts, totalCount, rows.Err()
}

/*
Count returns the number of posts matching the filter.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - int: Matching row count
  - error: Execution errors
*/
func (repository *postgresRepository) Count(context context.Context, filter Filter) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT COUNT(*) FROM %s p", schema.ContentPost.Table))

	var args []any
	args = applyFilter(&queryBuilder, filter, args)

	var count int
	if err := repository.pool.QueryRow(context, queryBuilder.String(), args...).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count posts")
	}

	return count, nil
}

// findByColumn runs the single-post lookup shared by FindByID and FindBySlug.
func (repository *postgresRepository) findByColumn(context context.Context, column, value string) (*Post, error) {
	p := schema.ContentPost

	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			%s AS tags
		FROM %s p
		WHERE p.%s = $1`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.PublishedAt,
		p.AuthorID, p.CategoryID, p.CreatedAt, p.UpdatedAt,
		tagAggregate(),
		p.Table,
		column,
	)

	post := &Post{}
	var tagsJSON []byte

	err := repository.pool.QueryRow(context, query, value).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.Published,
		&post.PublishedAt,
		&post.AuthorID,
		&post.CategoryID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&tagsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "find post")
	}

	if err := json.Unmarshal(tagsJSON, &post.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal post tags: %w", err)
	}

	return post, nil
}

// FindByID returns the post with the given primary key.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	return repository.findByColumn(context, schema.ContentPost.ID, id)
}

// FindBySlug returns the post with the given URL slug.
func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Post, error) {
	return repository.findByColumn(context, schema.ContentPost.Slug, slug)
}

/*
Create persists a new post and its tag links atomically.

Parameters:
  - context: context.Context
  - post: *Post
  - tagIDs: []string

Returns:
  - error: Persistence failures
*/
func (repository *postgresRepository) Create(context context.Context, post *Post, tagIDs []string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	p := schema.ContentPost
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`,
		p.Table,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.PublishedAt,
		p.AuthorID, p.CategoryID, p.CreatedAt, p.UpdatedAt,
	)

	_, err = transaction.Exec(context, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Published,
		post.PublishedAt,
		post.AuthorID,
		post.CategoryID,
	)
	if err != nil {
		return dberr.Wrap(err, "create post")
	}

	if len(tagIDs) > 0 {
		if err := repository.syncTags(context, transaction, post.ID, tagIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update persists post changes and synchronizes the tag junction atomically.

Description: The tag sync is full replacement: nil leaves the links alone,
an empty slice clears them. Both the row update and the junction rewrite
share one transaction so a constraint failure rolls everything back.

Parameters:
  - context: context.Context
  - post: *Post (complete updated state)
  - tagIDs: []string or nil

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *postgresRepository) Update(context context.Context, post *Post, tagIDs []string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	p := schema.ContentPost
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1`,
		p.Table,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.PublishedAt,
		p.CategoryID, p.UpdatedAt,
		p.ID,
	)

	result, err := transaction.Exec(context, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Published,
		post.PublishedAt,
		post.CategoryID,
	)
	if err != nil {
		return dberr.Wrap(err, "update post")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Post not found")
	}

	if tagIDs != nil {
		if err := repository.syncTags(context, transaction, post.ID, tagIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit update transaction: %w", err)
	}

	return nil
}

/*
syncTags synchronizes the post-tag junction with a clear-and-insert strategy.

Description: All existing links for the post are flushed, then the new set is
queued through a [pgx.Batch] to bound network round-trips.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (active transaction boundary)
  - postID: string
  - tagIDs: []string

Returns:
  - error: Execution failures
*/
func (repository *postgresRepository) syncTags(context context.Context, transaction pgx.Tx, postID string, tagIDs []string) error {
	pt := schema.ContentPostTag

	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", pt.Table, pt.PostID)
	if _, err := transaction.Exec(context, delQuery, postID); err != nil {
		return fmt.Errorf("postgres: failed to clear post tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", pt.Table, pt.PostID, pt.TagID)
	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(insQuery, postID, tagID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "link post tags")
	}

	return nil
}

/*
Delete physically removes a post. Junction rows are removed by the
ON DELETE CASCADE constraint on the junction table.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or execution errors
*/
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	p := schema.ContentPost
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", p.Table, p.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete post")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Post not found")
	}

	return nil
}
