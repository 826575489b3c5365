// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package export snapshots the database-backed content into flat files.

The output mirrors what [github.com/minhngo/folio/internal/static] reads:
posts become Markdown files with a YAML front matter block, projects and the
résumé become JSON documents. Exporting and then pointing the static loader
at the output directory reproduces the published site without a database.
*/
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/static"
	"github.com/minhngo/folio/pkg/pointer"
)

// pageSize is how many rows each listing round-trip fetches.
const pageSize = 100

// Summary reports what one export run produced.
type Summary struct {
	Posts    int    `json:"posts"`
	Projects int    `json:"projects"`
	Resume   bool   `json:"resume"`
	Dir      string `json:"dir"`
}

// Sources narrow the content services to what the exporter needs.
type postSource interface {
	List(ctx context.Context, filter post.Filter, limit, offset int) ([]*post.Post, int, error)
}

type projectSource interface {
	List(ctx context.Context, filter project.Filter, limit, offset int) ([]*project.Project, int, error)
}

type categorySource interface {
	Get(ctx context.Context, identifier string) (*category.Category, error)
}

type resumeSource interface {
	Latest(ctx context.Context) (*resume.Revision, error)
}

// Service writes content snapshots to a directory.
type Service struct {
	posts      postSource
	projects   projectSource
	categories categorySource
	resumes    resumeSource
	dir        string
	logger     *slog.Logger
}

// NewService constructs a new [Service] writing into dir.
func NewService(
	posts postSource,
	projects projectSource,
	categories categorySource,
	resumes resumeSource,
	dir string,
	logger *slog.Logger,
) *Service {
	return &Service{
		posts:      posts,
		projects:   projects,
		categories: categories,
		resumes:    resumes,
		dir:        dir,
		logger:     logger,
	}
}

/*
ExportAll snapshots every published post and project plus the latest résumé.

Description: The posts subdirectory is rebuilt from scratch so deleted posts
do not linger as stale files. A missing résumé is not an error — the site may
simply not have one yet.

Parameters:
  - ctx: context.Context

Returns:
  - *Summary: Counts of what was written
  - error: Filesystem or repository errors
*/
func (service *Service) ExportAll(ctx context.Context) (*Summary, error) {
	summary := &Summary{Dir: service.dir}

	postCount, err := service.exportPosts(ctx)
	if err != nil {
		return nil, err
	}
	summary.Posts = postCount

	projectCount, err := service.exportProjects(ctx)
	if err != nil {
		return nil, err
	}
	summary.Projects = projectCount

	wroteResume, err := service.exportResume(ctx)
	if err != nil {
		return nil, err
	}
	summary.Resume = wroteResume

	service.logger.Info("content_exported",
		slog.Int("posts", summary.Posts),
		slog.Int("projects", summary.Projects),
		slog.Bool("resume", summary.Resume),
		slog.String("dir", service.dir),
	)

	return summary, nil
}

// postFrontMatter is the YAML header written for each exported post.
type postFrontMatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Excerpt   string   `yaml:"excerpt,omitempty"`
	Date      string   `yaml:"date,omitempty"`
	Published bool     `yaml:"published"`
	Category  string   `yaml:"category,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
}

func (service *Service) exportPosts(ctx context.Context) (int, error) {
	postsDir := filepath.Join(service.dir, "posts")
	if err := os.RemoveAll(postsDir); err != nil {
		return 0, fmt.Errorf("export: failed to clear posts dir: %w", err)
	}
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		return 0, fmt.Errorf("export: failed to create posts dir: %w", err)
	}

	written := 0
	filter := post.Filter{Published: pointer.To(true)}

	for offset := 0; ; offset += pageSize {
		page, _, err := service.posts.List(ctx, filter, pageSize, offset)
		if err != nil {
			return 0, err
		}
		if len(page) == 0 {
			break
		}

		for _, entry := range page {
			if err := service.writePost(ctx, postsDir, entry); err != nil {
				return 0, err
			}
			written++
		}

		if len(page) < pageSize {
			break
		}
	}

	return written, nil
}

func (service *Service) writePost(ctx context.Context, postsDir string, entry *post.Post) error {
	meta := postFrontMatter{
		Title:     entry.Title,
		Slug:      entry.Slug,
		Excerpt:   entry.Excerpt,
		Published: true,
	}

	if entry.PublishedAt != nil {
		meta.Date = entry.PublishedAt.UTC().Format(time.RFC3339)
	}

	for _, tag := range entry.Tags {
		meta.Tags = append(meta.Tags, tag.Slug)
	}

	if entry.CategoryID != nil {
		found, err := service.categories.Get(ctx, *entry.CategoryID)
		if err != nil {
			// A dangling category reference should not sink the export.
			service.logger.Warn("export_category_unresolved",
				slog.String("post_id", entry.ID),
				slog.String("category_id", *entry.CategoryID),
			)
		} else {
			meta.Category = found.Slug
		}
	}

	header, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("export: failed to encode front matter for %s: %w", entry.Slug, err)
	}

	content := fmt.Sprintf("---\n%s---\n\n%s\n", header, entry.Content)
	path := filepath.Join(postsDir, entry.Slug+".mdx")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("export: failed to write %s: %w", path, err)
	}

	return nil
}

func (service *Service) exportProjects(ctx context.Context) (int, error) {
	var exported []static.Project
	filter := project.Filter{Published: pointer.To(true)}

	for offset := 0; ; offset += pageSize {
		page, _, err := service.projects.List(ctx, filter, pageSize, offset)
		if err != nil {
			return 0, err
		}
		if len(page) == 0 {
			break
		}

		for _, entry := range page {
			exported = append(exported, static.Project{
				Title:        entry.Title,
				Slug:         entry.Slug,
				Description:  entry.Description,
				Content:      entry.Content,
				Technologies: entry.Technologies,
				GithubURL:    entry.GithubURL,
				LiveURL:      entry.LiveURL,
				ImageURL:     entry.ImageURL,
				Featured:     entry.Featured,
				Published:    true,
			})
		}

		if len(page) < pageSize {
			break
		}
	}

	if exported == nil {
		exported = []static.Project{}
	}

	raw, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("export: failed to encode projects: %w", err)
	}

	path := filepath.Join(service.dir, "projects.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return 0, fmt.Errorf("export: failed to write %s: %w", path, err)
	}

	return len(exported), nil
}

func (service *Service) exportResume(ctx context.Context) (bool, error) {
	revision, err := service.resumes.Latest(ctx)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return false, nil
		}
		return false, err
	}

	raw, err := json.MarshalIndent(revision.Document, "", "  ")
	if err != nil {
		return false, fmt.Errorf("export: failed to encode resume: %w", err)
	}

	path := filepath.Join(service.dir, "resume.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return false, fmt.Errorf("export: failed to write %s: %w", path, err)
	}

	return true, nil
}
