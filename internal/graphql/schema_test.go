// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/content/upload"
	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/ctxutil"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/users/auth"
)

// # Stub Services

type stubAuth struct {
	session *auth.LoginSession
	lastIP  string
}

func (s *stubAuth) Login(_ context.Context, input auth.LoginInput) (*auth.LoginSession, error) {
	s.lastIP = input.IPAddress
	if s.session == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	return s.session, nil
}

func (s *stubAuth) Refresh(_ context.Context, _ string) (*auth.LoginSession, error) {
	if s.session == nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}
	return s.session, nil
}

type stubPosts struct {
	posts      []*post.Post
	lastFilter post.Filter
	created    *post.CreateInput
	authorID   string
}

func (s *stubPosts) List(_ context.Context, filter post.Filter, _, _ int) ([]*post.Post, int, error) {
	s.lastFilter = filter
	var matched []*post.Post
	for _, p := range s.posts {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

func (s *stubPosts) Count(_ context.Context, filter post.Filter) (int, error) {
	_, total, _ := s.List(context.Background(), filter, 0, 0)
	return total, nil
}

func (s *stubPosts) Get(_ context.Context, identifier string) (*post.Post, error) {
	for _, p := range s.posts {
		if p.ID == identifier || p.Slug == identifier {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Post not found")
}

func (s *stubPosts) Create(_ context.Context, input post.CreateInput, authorID string) (*post.Post, error) {
	s.created = &input
	s.authorID = authorID
	return &post.Post{ID: "new-post", Title: input.Title, Slug: "created", Content: input.Content, AuthorID: authorID}, nil
}

func (s *stubPosts) Update(_ context.Context, id string, input post.UpdateInput) (*post.Post, error) {
	found, err := s.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		found.Title = *input.Title
	}
	return found, nil
}

func (s *stubPosts) Delete(_ context.Context, id string) error {
	_, err := s.Get(context.Background(), id)
	return err
}

type stubCategories struct{ categories []*category.Category }

func (s *stubCategories) List(_ context.Context) ([]*category.Category, error) {
	return s.categories, nil
}

func (s *stubCategories) Get(_ context.Context, identifier string) (*category.Category, error) {
	for _, c := range s.categories {
		if c.ID == identifier || c.Slug == identifier {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Category not found")
}

func (s *stubCategories) Create(_ context.Context, input category.CreateInput) (*category.Category, error) {
	return &category.Category{ID: "new-category", Name: input.Name, Slug: "created"}, nil
}

func (s *stubCategories) Update(_ context.Context, id string, _ category.UpdateInput) (*category.Category, error) {
	return s.Get(context.Background(), id)
}

func (s *stubCategories) Delete(_ context.Context, _ string) error { return nil }

type stubTags struct{ tags []*tag.Tag }

func (s *stubTags) List(_ context.Context) ([]*tag.Tag, error) { return s.tags, nil }

func (s *stubTags) Get(_ context.Context, identifier string) (*tag.Tag, error) {
	for _, t := range s.tags {
		if t.ID == identifier || t.Slug == identifier {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Tag not found")
}

func (s *stubTags) Create(_ context.Context, input tag.CreateInput) (*tag.Tag, error) {
	return &tag.Tag{ID: "new-tag", Name: input.Name, Slug: "created"}, nil
}

func (s *stubTags) Update(_ context.Context, id string, _ tag.UpdateInput) (*tag.Tag, error) {
	return s.Get(context.Background(), id)
}

func (s *stubTags) Delete(_ context.Context, _ string) error { return nil }

type stubProjects struct {
	projects   []*project.Project
	lastFilter project.Filter
}

func (s *stubProjects) List(_ context.Context, filter project.Filter, _, _ int) ([]*project.Project, int, error) {
	s.lastFilter = filter
	var matched []*project.Project
	for _, p := range s.projects {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

func (s *stubProjects) Count(_ context.Context, filter project.Filter) (int, error) {
	_, total, _ := s.List(context.Background(), filter, 0, 0)
	return total, nil
}

func (s *stubProjects) Get(_ context.Context, identifier string) (*project.Project, error) {
	for _, p := range s.projects {
		if p.ID == identifier || p.Slug == identifier {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Project not found")
}

func (s *stubProjects) Create(_ context.Context, input project.CreateInput) (*project.Project, error) {
	return &project.Project{ID: "new-project", Title: input.Title, Slug: "created", Description: input.Description}, nil
}

func (s *stubProjects) Update(_ context.Context, id string, _ project.UpdateInput) (*project.Project, error) {
	return s.Get(context.Background(), id)
}

func (s *stubProjects) Delete(_ context.Context, _ string) error { return nil }

type stubResumes struct {
	revision *resume.Revision
	updated  *resume.Document
}

func (s *stubResumes) Latest(_ context.Context) (*resume.Revision, error) {
	if s.revision == nil {
		return nil, apperr.NotFound("No resume has been saved yet")
	}
	return s.revision, nil
}

func (s *stubResumes) History(_ context.Context) ([]*resume.Revision, error) {
	if s.revision == nil {
		return nil, nil
	}
	return []*resume.Revision{s.revision}, nil
}

func (s *stubResumes) Update(_ context.Context, document resume.Document) (*resume.Revision, error) {
	s.updated = &document
	return &resume.Revision{ID: "new-revision", Document: document, CreatedAt: time.Now()}, nil
}

func (s *stubResumes) DeleteLatest(_ context.Context) error {
	if s.revision == nil {
		return apperr.NotFound("No resume has been saved yet")
	}
	s.revision = nil
	return nil
}

type stubUploads struct{ deleted []string }

func (s *stubUploads) List(_ context.Context, _ string, _, _ int) ([]*upload.File, int, error) {
	return nil, 0, nil
}

func (s *stubUploads) Get(_ context.Context, id string) (*upload.File, error) {
	return nil, apperr.NotFound("Upload not found")
}

func (s *stubUploads) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUploads) DeleteBatch(_ context.Context, ids []string) (int, error) {
	s.deleted = append(s.deleted, ids...)
	return len(ids), nil
}

// # Fixture

type fixture struct {
	schema   graphql.Schema
	auth     *stubAuth
	posts    *stubPosts
	resumes  *stubResumes
	uploads  *stubUploads
	projects *stubProjects
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		auth: &stubAuth{},
		posts: &stubPosts{posts: []*post.Post{
			{ID: "p1", Title: "Public Post", Slug: "public-post", Content: "body", Published: true, AuthorID: "a1"},
			{ID: "p2", Title: "Draft Post", Slug: "draft-post", Content: "wip", Published: false, AuthorID: "a1"},
		}},
		resumes:  &stubResumes{},
		uploads:  &stubUploads{},
		projects: &stubProjects{},
	}

	resolver := NewResolver(Services{
		Auth:       f.auth,
		Posts:      f.posts,
		Categories: &stubCategories{},
		Tags:       &stubTags{},
		Projects:   f.projects,
		Resumes:    f.resumes,
		Uploads:    f.uploads,
	})

	schema, err := NewSchema(resolver)
	require.NoError(t, err)
	f.schema = schema

	return f
}

func (f *fixture) exec(query string, caller *sec.Caller) *graphql.Result {
	ctx := context.Background()
	if caller != nil {
		ctx = ctxutil.WithCaller(ctx, caller)
	}
	return graphql.Do(graphql.Params{
		Schema:        f.schema,
		RequestString: query,
		Context:       ctx,
	})
}

func adminCaller() *sec.Caller {
	return &sec.Caller{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: sec.RoleAdmin}
}

func userCaller() *sec.Caller {
	return &sec.Caller{ID: "user-1", Email: "user@example.com", Name: "User", Role: sec.RoleUser}
}

// # Tests

func TestPostsQueryVisibility(t *testing.T) {
	t.Run("anonymous callers are clamped to published posts", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ posts { id title } }`, nil)

		require.Empty(t, result.Errors)
		require.NotNil(t, f.posts.lastFilter.Published)
		assert.True(t, *f.posts.lastFilter.Published)

		posts := result.Data.(map[string]interface{})["posts"].([]interface{})
		assert.Len(t, posts, 1)
	})

	t.Run("admins see drafts when asking for them", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ posts(published: false) { id title } }`, adminCaller())

		require.Empty(t, result.Errors)
		posts := result.Data.(map[string]interface{})["posts"].([]interface{})
		require.Len(t, posts, 1)
		entry := posts[0].(map[string]interface{})
		assert.Equal(t, "Draft Post", entry["title"])
	})
}

func TestPostQueryBySlug(t *testing.T) {
	t.Run("published post resolves for anonymous", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ post(slug: "public-post") { title published } }`, nil)

		require.Empty(t, result.Errors)
		entry := result.Data.(map[string]interface{})["post"].(map[string]interface{})
		assert.Equal(t, "Public Post", entry["title"])
	})

	t.Run("draft resolves to null for anonymous", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ post(slug: "draft-post") { title } }`, nil)

		require.Empty(t, result.Errors)
		assert.Nil(t, result.Data.(map[string]interface{})["post"])
	})

	t.Run("draft resolves for admin", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ post(slug: "draft-post") { title } }`, adminCaller())

		require.Empty(t, result.Errors)
		entry := result.Data.(map[string]interface{})["post"].(map[string]interface{})
		assert.Equal(t, "Draft Post", entry["title"])
	})

	t.Run("missing identifier is an error", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ post { title } }`, nil)

		require.NotEmpty(t, result.Errors)
	})
}

func TestMeQuery(t *testing.T) {
	t.Run("anonymous is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ me { id email } }`, nil)

		require.NotEmpty(t, result.Errors)
	})

	t.Run("authenticated caller sees their identity", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`{ me { id email role } }`, userCaller())

		require.Empty(t, result.Errors)
		me := result.Data.(map[string]interface{})["me"].(map[string]interface{})
		assert.Equal(t, "user-1", me["id"])
		assert.Equal(t, "USER", me["role"])
	})
}

func TestCreatePostMutation(t *testing.T) {
	const mutation = `mutation {
		createPost(input: { title: "Via GraphQL", content: "body", published: true, tagIds: ["t1"] }) {
			id
			title
		}
	}`

	t.Run("anonymous is rejected", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(mutation, nil)

		require.NotEmpty(t, result.Errors)
		assert.Nil(t, f.posts.created)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(mutation, userCaller())

		require.NotEmpty(t, result.Errors)
		assert.Nil(t, f.posts.created)
	})

	t.Run("admin creates and is recorded as author", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(mutation, adminCaller())

		require.Empty(t, result.Errors)
		require.NotNil(t, f.posts.created)
		assert.Equal(t, "Via GraphQL", f.posts.created.Title)
		assert.True(t, f.posts.created.Published)
		assert.Equal(t, []string{"t1"}, f.posts.created.TagIDs)
		assert.Equal(t, "admin-1", f.posts.authorID)
	})
}

func TestCreateCategoryMutation(t *testing.T) {
	const mutation = `mutation { createCategory(name: "Engineering") { id name } }`

	t.Run("anonymous is rejected", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(mutation, nil)

		require.NotEmpty(t, result.Errors)
	})

	t.Run("admin creates", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(mutation, adminCaller())

		require.Empty(t, result.Errors)
		created := result.Data.(map[string]interface{})["createCategory"].(map[string]interface{})
		assert.Equal(t, "Engineering", created["name"])
	})
}

func TestLoginMutation(t *testing.T) {
	f := newFixture(t)
	f.auth.session = &auth.LoginSession{
		Tokens: &sec.TokenPair{AccessToken: "access", RefreshToken: "refresh", AccessExpiry: time.Now()},
		User:   &auth.User{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: sec.RoleAdmin},
	}

	result := f.exec(`mutation {
		login(email: "admin@example.com", password: "secret") {
			accessToken
			refreshToken
			user { email }
		}
	}`, nil)

	require.Empty(t, result.Errors)
	session := result.Data.(map[string]interface{})["login"].(map[string]interface{})
	assert.Equal(t, "access", session["accessToken"])
	assert.Equal(t, "refresh", session["refreshToken"])
	user := session["user"].(map[string]interface{})
	assert.Equal(t, "admin@example.com", user["email"])
}

func TestUpdateResumeMutation(t *testing.T) {
	f := newFixture(t)

	result := f.exec(`mutation {
		updateResume(document: { version: 1, basics: { name: "Minh Ngo" } }) {
			id
		}
	}`, adminCaller())

	require.Empty(t, result.Errors)
	require.NotNil(t, f.resumes.updated)
	assert.Equal(t, "Minh Ngo", f.resumes.updated.Basics.Name)
}

func TestDeleteResumeMutation(t *testing.T) {
	t.Run("admin drops the latest revision", func(t *testing.T) {
		f := newFixture(t)
		f.resumes.revision = &resume.Revision{ID: "rev-1"}

		result := f.exec(`mutation { deleteResume }`, adminCaller())

		require.Empty(t, result.Errors)
		assert.Equal(t, true, result.Data.(map[string]interface{})["deleteResume"])
		assert.Nil(t, f.resumes.revision)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.resumes.revision = &resume.Revision{ID: "rev-1"}

		result := f.exec(`mutation { deleteResume }`, userCaller())

		require.NotEmpty(t, result.Errors)
		assert.NotNil(t, f.resumes.revision)
	})
}

func TestDeleteUploadsMutation(t *testing.T) {
	t.Run("admin batch delete returns the count", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`mutation { deleteUploads(ids: ["u1", "u2"]) }`, adminCaller())

		require.Empty(t, result.Errors)
		assert.Equal(t, 2, result.Data.(map[string]interface{})["deleteUploads"])
		assert.Equal(t, []string{"u1", "u2"}, f.uploads.deleted)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		f := newFixture(t)

		result := f.exec(`mutation { deleteUploads(ids: ["u1"]) }`, userCaller())

		require.NotEmpty(t, result.Errors)
		assert.Empty(t, f.uploads.deleted)
	})
}

func TestProjectsQueryVisibility(t *testing.T) {
	f := newFixture(t)
	f.projects.projects = []*project.Project{
		{ID: "pr1", Title: "Live", Slug: "live", Description: "d", Published: true},
		{ID: "pr2", Title: "WIP", Slug: "wip", Description: "d", Published: false},
	}

	result := f.exec(`{ projects { title } }`, nil)

	require.Empty(t, result.Errors)
	projects := result.Data.(map[string]interface{})["projects"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, "Live", projects[0].(map[string]interface{})["title"])
}

func TestProjectsQueryOrderArgs(t *testing.T) {
	f := newFixture(t)
	f.projects.projects = []*project.Project{
		{ID: "pr1", Title: "Live", Slug: "live", Description: "d", Published: true},
	}

	result := f.exec(`{ projects(orderBy: "title", orderDir: "asc") { title } }`, nil)

	require.Empty(t, result.Errors)
	assert.Equal(t, "title", f.projects.lastFilter.OrderBy)
	assert.Equal(t, "asc", f.projects.lastFilter.OrderDir)
}
