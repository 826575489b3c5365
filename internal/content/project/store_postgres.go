// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package project

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

// postgresRepository implements [Repository] using pgx. The technology stack
// lives in a JSONB column and round-trips through pgx's native JSON scanning.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed project store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func projectColumns() string {
	p := schema.ContentProject
	return strings.Join(p.Columns(), ", ")
}

func applyFilter(queryBuilder *strings.Builder, filter Filter, args []any) []any {
	p := schema.ContentProject
	argID := len(args) + 1

	queryBuilder.WriteString(" WHERE TRUE")

	if filter.Published != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", p.Published, argID))
		args = append(args, *filter.Published)
		argID++
	}

	if filter.Featured != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", p.Featured, argID))
		args = append(args, *filter.Featured)
		argID++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			p.Title, argID, p.Description, argID,
		))
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	return args
}

func scanProject(row pgx.Row, totalCount *int) (*Project, error) {
	project := &Project{}

	dest := []any{
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.Description,
		&project.Content,
		&project.Technologies,
		&project.GithubURL,
		&project.LiveURL,
		&project.ImageURL,
		&project.Featured,
		&project.Published,
		&project.CreatedAt,
		&project.UpdatedAt,
	}
	if totalCount != nil {
		dest = append(dest, totalCount)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	return project, nil
}

// orderClause maps the whitelisted sort keys onto physical columns. Featured
// projects float to the top of every listing regardless of the key.
func orderClause(filter Filter) string {
	p := schema.ContentProject

	column := p.CreatedAt
	switch filter.OrderBy {
	case "title":
		column = p.Title
	case "updated_at":
		column = p.UpdatedAt
	case "created_at", "":
		column = p.CreatedAt
	}

	direction := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		direction = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s DESC, %s %s, %s DESC", p.Featured, column, direction, p.ID)
}

// List returns a filtered page of projects, newest first, plus the total count.
func (repository *postgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Project, int, error) {
	p := schema.ContentProject

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s, COUNT(*) OVER() AS total_count FROM %s",
		projectColumns(), p.Table,
	))

	var args []any
	args = applyFilter(&queryBuilder, filter, args)

	queryBuilder.WriteString(orderClause(filter))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list projects")
	}
	defer rows.Close()

	var projects []*Project
	var totalCount int

	for rows.Next() {
		project, err := scanProject(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan project")
		}
		projects = append(projects, project)
	}

	return projects, totalCount, rows.Err()
}

// Count returns the number of projects matching the filter.
func (repository *postgresRepository) Count(ctx context.Context, filter Filter) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.ContentProject.Table))

	var args []any
	args = applyFilter(&queryBuilder, filter, args)

	var count int
	if err := repository.pool.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count projects")
	}

	return count, nil
}

func (repository *postgresRepository) findByColumn(ctx context.Context, column, value string) (*Project, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		projectColumns(), schema.ContentProject.Table, column,
	)

	project, err := scanProject(repository.pool.QueryRow(ctx, query, value), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, dberr.Wrap(err, "find project")
	}

	return project, nil
}

// FindByID returns the project with the given primary key.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	return repository.findByColumn(ctx, schema.ContentProject.ID, id)
}

// FindBySlug returns the project with the given URL slug.
func (repository *postgresRepository) FindBySlug(ctx context.Context, slug string) (*Project, error) {
	return repository.findByColumn(ctx, schema.ContentProject.Slug, slug)
}

// Create persists a new project.
func (repository *postgresRepository) Create(ctx context.Context, project *Project) error {
	p := schema.ContentProject
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`,
		p.Table, projectColumns(),
	)

	_, err := repository.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.Content,
		project.Technologies,
		project.GithubURL,
		project.LiveURL,
		project.ImageURL,
		project.Featured,
		project.Published,
	)

	return dberr.Wrap(err, "create project")
}

// Update persists project changes.
func (repository *postgresRepository) Update(ctx context.Context, project *Project) error {
	p := schema.ContentProject
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1`,
		p.Table,
		p.Title, p.Slug, p.Description, p.Content, p.Technologies,
		p.GithubURL, p.LiveURL, p.ImageURL, p.Featured, p.Published, p.UpdatedAt,
		p.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.Content,
		project.Technologies,
		project.GithubURL,
		project.LiveURL,
		project.ImageURL,
		project.Featured,
		project.Published,
	)
	if err != nil {
		return dberr.Wrap(err, "update project")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Project not found")
	}

	return nil
}

// Delete physically removes a project.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	p := schema.ContentProject
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", p.Table, p.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete project")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Project not found")
	}

	return nil
}
