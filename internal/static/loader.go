// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package static

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/pkg/slug"
)

// Layout of the content directory.
const (
	postsSubdir    = "posts"
	projectsSubdir = "projects"
	projectsFile   = "projects.json"
	resumeFile     = "resume.json"
)

// frontMatterDelimiter separates the YAML header from the Markdown body.
const frontMatterDelimiter = "---"

// dateLayouts are the accepted front matter date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Loader reads site content from a directory tree.
//
// # Concurrency
//
// Loader keeps no state between calls and is safe for concurrent use.
// Every call re-reads the filesystem, so edits show up without a restart.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader constructs a [Loader] rooted at dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the content root this loader reads from.
func (loader *Loader) Dir() string {
	return loader.dir
}

/*
AllPosts returns every published post, newest first.

Description: Each Markdown file under posts/ is parsed independently; files
that fail to parse are logged and skipped. A missing posts directory yields
an empty slice.
*/
func (loader *Loader) AllPosts() []Post {
	entries, err := os.ReadDir(filepath.Join(loader.dir, postsSubdir))
	if err != nil {
		if !os.IsNotExist(err) {
			loader.logger.Warn("static_posts_dir_unreadable", slog.String("error", err.Error()))
		}
		return []Post{}
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}

		post, err := loader.loadPost(filepath.Join(loader.dir, postsSubdir, entry.Name()))
		if err != nil {
			loader.logger.Warn("static_post_skipped",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if post.Published {
			posts = append(posts, post)
		}
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })

	return posts
}

// PostBySlug returns one published post, or apperr.NotFound.
func (loader *Loader) PostBySlug(postSlug string) (*Post, error) {
	for _, post := range loader.AllPosts() {
		if post.Slug == postSlug {
			return &post, nil
		}
	}
	return nil, apperr.NotFound("Post not found")
}

// AllProjects returns every published project, featured entries first.
// Markdown files under projects/ take precedence; when none exist the
// projects file is read instead. Missing or malformed sources yield an
// empty slice.
func (loader *Loader) AllProjects() []Project {
	all := loader.markdownProjects()
	if all == nil {
		all = loader.jsonProjects()
	}

	projects := make([]Project, 0, len(all))
	for _, project := range all {
		if !project.Published {
			continue
		}
		if project.Slug == "" {
			project.Slug = slug.From(project.Title)
		}
		projects = append(projects, project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Featured && !projects[j].Featured
	})

	return projects
}

// markdownProjects reads Markdown files under projects/. A nil return
// means no Markdown source exists and the JSON fallback should be used.
func (loader *Loader) markdownProjects() []Project {
	entries, err := os.ReadDir(filepath.Join(loader.dir, projectsSubdir))
	if err != nil {
		if !os.IsNotExist(err) {
			loader.logger.Warn("static_projects_dir_unreadable", slog.String("error", err.Error()))
		}
		return nil
	}

	var projects []Project
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}

		project, err := loader.loadProject(filepath.Join(loader.dir, projectsSubdir, entry.Name()))
		if err != nil {
			loader.logger.Warn("static_project_skipped",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		projects = append(projects, project)
	}

	return projects
}

// jsonProjects reads the legacy projects file.
func (loader *Loader) jsonProjects() []Project {
	raw, err := os.ReadFile(filepath.Join(loader.dir, projectsFile))
	if err != nil {
		if !os.IsNotExist(err) {
			loader.logger.Warn("static_projects_unreadable", slog.String("error", err.Error()))
		}
		return []Project{}
	}

	var all []Project
	if err := json.Unmarshal(raw, &all); err != nil {
		loader.logger.Warn("static_projects_malformed", slog.String("error", err.Error()))
		return []Project{}
	}

	return all
}

// loadProject parses one Markdown project file.
func (loader *Loader) loadProject(path string) (Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Project{}, err
	}

	header, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Project{}, err
	}

	var meta projectFrontMatter
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return Project{}, fmt.Errorf("invalid front matter: %w", err)
	}
	if meta.Title == "" {
		return Project{}, fmt.Errorf("front matter is missing a title")
	}

	return Project{
		Title:        meta.Title,
		Slug:         meta.Slug,
		Description:  meta.Description,
		Content:      strings.TrimSpace(body),
		Technologies: meta.Technologies,
		GithubURL:    meta.GithubURL,
		LiveURL:      meta.LiveURL,
		ImageURL:     meta.ImageURL,
		Featured:     meta.Featured,
		Published:    meta.Published == nil || *meta.Published,
	}, nil
}

// ProjectBySlug returns one published project, or apperr.NotFound.
func (loader *Loader) ProjectBySlug(projectSlug string) (*Project, error) {
	for _, project := range loader.AllProjects() {
		if project.Slug == projectSlug {
			return &project, nil
		}
	}
	return nil, apperr.NotFound("Project not found")
}

// Resume reads and validates the résumé file. Unlike posts and projects, a
// corrupt résumé is an error: rendering a silently empty résumé would be
// worse than rendering none.
func (loader *Loader) Resume() (*Resume, error) {
	raw, err := os.ReadFile(filepath.Join(loader.dir, resumeFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("No resume file present")
		}
		return nil, fmt.Errorf("static: failed to read resume: %w", err)
	}

	var document Resume
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("static: malformed resume file: %w", err)
	}
	if err := document.Validate(); err != nil {
		return nil, fmt.Errorf("static: resume file failed validation: %w", err)
	}

	return &document, nil
}

// Categories returns the distinct post categories, sorted.
func (loader *Loader) Categories() []string {
	return distinct(loader.AllPosts(), func(post Post) []string {
		if post.Category == "" {
			return nil
		}
		return []string{post.Category}
	})
}

// Tags returns the distinct post tags, sorted.
func (loader *Loader) Tags() []string {
	return distinct(loader.AllPosts(), func(post Post) []string {
		return post.Tags
	})
}

// loadPost parses one Markdown file: front matter block, then body.
func (loader *Loader) loadPost(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	header, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Post{}, err
	}

	var meta frontMatter
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return Post{}, fmt.Errorf("invalid front matter: %w", err)
	}

	if meta.Title == "" {
		return Post{}, fmt.Errorf("front matter is missing a title")
	}

	post := Post{
		Title:     meta.Title,
		Slug:      meta.Slug,
		Excerpt:   meta.Excerpt,
		Category:  meta.Category,
		Tags:      meta.Tags,
		Content:   strings.TrimSpace(body),
		Published: meta.Published == nil || *meta.Published,
	}

	if post.Slug == "" {
		base := filepath.Base(path)
		post.Slug = slug.From(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if meta.Date != "" {
		date, err := parseDate(meta.Date)
		if err != nil {
			return Post{}, err
		}
		post.Date = date
	}

	return post, nil
}

// splitFrontMatter separates the YAML header from the Markdown body.
func splitFrontMatter(raw string) (header, body string, err error) {
	// Editors on Windows occasionally prepend a UTF-8 BOM.
	trimmed := strings.TrimLeft(raw, "\uFEFF\n\r")
	if !strings.HasPrefix(trimmed, frontMatterDelimiter+"\n") && !strings.HasPrefix(trimmed, frontMatterDelimiter+"\r\n") {
		return "", "", fmt.Errorf("missing front matter block")
	}

	rest := trimmed[len(frontMatterDelimiter):]
	rest = strings.TrimPrefix(rest, "\r\n")
	rest = strings.TrimPrefix(rest, "\n")

	parts := strings.SplitN(rest, "\n"+frontMatterDelimiter, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("unterminated front matter block")
	}

	body = strings.TrimPrefix(parts[1], "\r")
	body = strings.TrimPrefix(body, "\n")

	return parts[0], body, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// isMarkdown reports whether the filename carries a Markdown extension.
func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}

// distinct collects, dedupes, and sorts values extracted from posts.
func distinct(posts []Post, extract func(Post) []string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, post := range posts {
		for _, value := range extract(post) {
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}
