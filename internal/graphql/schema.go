// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/minhngo/folio/internal/content/category"
	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/content/project"
	"github.com/minhngo/folio/internal/content/resume"
	"github.com/minhngo/folio/internal/content/tag"
	"github.com/minhngo/folio/internal/users/auth"
	"github.com/minhngo/folio/pkg/pagination"
)

/*
NewSchema assembles the executable schema around a resolver.

Parameters:
  - resolver: *Resolver

Returns:
  - graphql.Schema: The executable schema
  - error: Schema construction failures
*/
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	types := newSchemaTypes(resolver)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType(resolver, types),
		Mutation: mutationType(resolver, types),
	})
}

// # Query Root

func queryType(resolver *Resolver, types *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{

			"me": &graphql.Field{
				Type: types.user,
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return requireAuthenticated(params.Context)
				},
			},

			"posts": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.post)),
				Args: graphql.FieldConfigArgument{
					"published":  &graphql.ArgumentConfig{Type: graphql.Boolean},
					"categoryId": &graphql.ArgumentConfig{Type: graphql.ID},
					"tagId":      &graphql.ArgumentConfig{Type: graphql.ID},
					"search":     &graphql.ArgumentConfig{Type: graphql.String},
					"orderBy":    &graphql.ArgumentConfig{Type: graphql.String},
					"orderDir":   &graphql.ArgumentConfig{Type: graphql.String},
					"limit":      &graphql.ArgumentConfig{Type: graphql.Int},
					"page":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					limit, offset := paginationArgs(params)
					posts, _, err := resolver.posts.List(params.Context, postFilterArgs(params), limit, offset)
					return posts, err
				},
			},

			"postsCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: graphql.FieldConfigArgument{
					"published":  &graphql.ArgumentConfig{Type: graphql.Boolean},
					"categoryId": &graphql.ArgumentConfig{Type: graphql.ID},
					"tagId":      &graphql.ArgumentConfig{Type: graphql.ID},
					"search":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.posts.Count(params.Context, postFilterArgs(params))
				},
			},

			"post": &graphql.Field{
				Type: types.post,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.ID},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					identifier, err := identifierArg(params)
					if err != nil {
						return nil, err
					}
					found, err := resolver.posts.Get(params.Context, identifier)
					if err != nil {
						return nil, err
					}
					// Drafts stay invisible outside the back office.
					if !found.Published && !callerFrom(params.Context).IsAdmin() {
						return nil, nil
					}
					return found, nil
				},
			},

			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.category)),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.categories.List(params.Context)
				},
			},

			"category": &graphql.Field{
				Type: types.category,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.ID},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					identifier, err := identifierArg(params)
					if err != nil {
						return nil, err
					}
					return resolver.categories.Get(params.Context, identifier)
				},
			},

			"tags": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.tag)),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.tags.List(params.Context)
				},
			},

			"tag": &graphql.Field{
				Type: types.tag,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.ID},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					identifier, err := identifierArg(params)
					if err != nil {
						return nil, err
					}
					return resolver.tags.Get(params.Context, identifier)
				},
			},

			"projects": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.project)),
				Args: graphql.FieldConfigArgument{
					"published": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"featured":  &graphql.ArgumentConfig{Type: graphql.Boolean},
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
					"orderBy":   &graphql.ArgumentConfig{Type: graphql.String},
					"orderDir":  &graphql.ArgumentConfig{Type: graphql.String},
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
					"page":      &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					limit, offset := paginationArgs(params)
					projects, _, err := resolver.projects.List(params.Context, projectFilterArgs(params), limit, offset)
					return projects, err
				},
			},

			"projectsCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: graphql.FieldConfigArgument{
					"published": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"featured":  &graphql.ArgumentConfig{Type: graphql.Boolean},
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.projects.Count(params.Context, projectFilterArgs(params))
				},
			},

			"project": &graphql.Field{
				Type: types.project,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.ID},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					identifier, err := identifierArg(params)
					if err != nil {
						return nil, err
					}
					found, err := resolver.projects.Get(params.Context, identifier)
					if err != nil {
						return nil, err
					}
					if !found.Published && !callerFrom(params.Context).IsAdmin() {
						return nil, nil
					}
					return found, nil
				},
			},

			"resume": &graphql.Field{
				Type: types.resumeRevision,
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.resumes.Latest(params.Context)
				},
			},

			"resumes": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.resumeRevision)),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.resumes.History(params.Context)
				},
			},

			"uploads": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(types.upload)),
				Args: graphql.FieldConfigArgument{
					"folder": &graphql.ArgumentConfig{Type: graphql.String},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
					"page":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					limit, offset := paginationArgs(params)
					files, _, err := resolver.uploads.List(params.Context, stringArg(params, "folder"), limit, offset)
					return files, err
				},
			},

			"upload": &graphql.Field{
				Type: types.upload,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.uploads.Get(params.Context, stringArg(params, "id"))
				},
			},
		},
	})
}

// # Mutation Root

func mutationType(resolver *Resolver, types *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{

			"login": &graphql.Field{
				Type: types.session,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.auth.Login(params.Context, auth.LoginInput{
						Email:     stringArg(params, "email"),
						Password:  stringArg(params, "password"),
						IPAddress: remoteIPFrom(params.Context),
					})
				},
			},

			"refreshToken": &graphql.Field{
				Type: types.session,
				Args: graphql.FieldConfigArgument{
					"refreshToken": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return resolver.auth.Refresh(params.Context, stringArg(params, "refreshToken"))
				},
			},

			"createPost": &graphql.Field{
				Type: types.post,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInput)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					caller, err := requireAdmin(params.Context)
					if err != nil {
						return nil, err
					}
					input := inputMap(params)
					return resolver.posts.Create(params.Context, post.CreateInput{
						Title:      mapString(input, "title"),
						Slug:       mapString(input, "slug"),
						Excerpt:    mapString(input, "excerpt"),
						Content:    mapString(input, "content"),
						Published:  mapBool(input, "published"),
						CategoryID: mapStringPtr(input, "categoryId"),
						TagIDs:     mapStringList(input, "tagIds"),
					}, caller.ID)
				},
			},

			"updatePost": &graphql.Field{
				Type: types.post,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInput)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					input := inputMap(params)
					return resolver.posts.Update(params.Context, stringArg(params, "id"), post.UpdateInput{
						Title:      mapStringPtr(input, "title"),
						Slug:       mapStringPtr(input, "slug"),
						Excerpt:    mapStringPtr(input, "excerpt"),
						Content:    mapStringPtr(input, "content"),
						Published:  mapBoolPtr(input, "published"),
						CategoryID: mapStringPtr(input, "categoryId"),
						TagIDs:     mapStringList(input, "tagIds"),
					})
				},
			},

			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.posts.Delete(params.Context, stringArg(params, "id")); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"createCategory": &graphql.Field{
				Type: types.category,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"slug":        &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.categories.Create(params.Context, category.CreateInput{
						Name:        stringArg(params, "name"),
						Slug:        stringArg(params, "slug"),
						Description: stringArg(params, "description"),
					})
				},
			},

			"updateCategory": &graphql.Field{
				Type: types.category,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"slug":        &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.categories.Update(params.Context, stringArg(params, "id"), category.UpdateInput{
						Name:        stringArgPtr(params, "name"),
						Slug:        stringArgPtr(params, "slug"),
						Description: stringArgPtr(params, "description"),
					})
				},
			},

			"deleteCategory": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.categories.Delete(params.Context, stringArg(params, "id")); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"createTag": &graphql.Field{
				Type: types.tag,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.tags.Create(params.Context, tag.CreateInput{
						Name: stringArg(params, "name"),
						Slug: stringArg(params, "slug"),
					})
				},
			},

			"updateTag": &graphql.Field{
				Type: types.tag,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name": &graphql.ArgumentConfig{Type: graphql.String},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					return resolver.tags.Update(params.Context, stringArg(params, "id"), tag.UpdateInput{
						Name: stringArgPtr(params, "name"),
						Slug: stringArgPtr(params, "slug"),
					})
				},
			},

			"deleteTag": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.tags.Delete(params.Context, stringArg(params, "id")); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"createProject": &graphql.Field{
				Type: types.project,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(projectInput)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					input := inputMap(params)
					return resolver.projects.Create(params.Context, project.CreateInput{
						Title:        mapString(input, "title"),
						Slug:         mapString(input, "slug"),
						Description:  mapString(input, "description"),
						Content:      mapString(input, "content"),
						Technologies: mapStringList(input, "technologies"),
						GithubURL:    mapString(input, "githubUrl"),
						LiveURL:      mapString(input, "liveUrl"),
						ImageURL:     mapString(input, "imageUrl"),
						Featured:     mapBool(input, "featured"),
						Published:    mapBool(input, "published"),
					})
				},
			},

			"updateProject": &graphql.Field{
				Type: types.project,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(projectInput)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					input := inputMap(params)
					return resolver.projects.Update(params.Context, stringArg(params, "id"), project.UpdateInput{
						Title:        mapStringPtr(input, "title"),
						Slug:         mapStringPtr(input, "slug"),
						Description:  mapStringPtr(input, "description"),
						Content:      mapStringPtr(input, "content"),
						Technologies: mapStringList(input, "technologies"),
						GithubURL:    mapStringPtr(input, "githubUrl"),
						LiveURL:      mapStringPtr(input, "liveUrl"),
						ImageURL:     mapStringPtr(input, "imageUrl"),
						Featured:     mapBoolPtr(input, "featured"),
						Published:    mapBoolPtr(input, "published"),
					})
				},
			},

			"deleteProject": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.projects.Delete(params.Context, stringArg(params, "id")); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"updateResume": &graphql.Field{
				Type: types.resumeRevision,
				Args: graphql.FieldConfigArgument{
					"document": &graphql.ArgumentConfig{Type: graphql.NewNonNull(jsonScalar)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					document, err := decodeResumeDocument(params.Args["document"])
					if err != nil {
						return nil, err
					}
					return resolver.resumes.Update(params.Context, document)
				},
			},

			"deleteResume": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Drops the latest revision, rolling back to the previous one.",
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.resumes.DeleteLatest(params.Context); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"deleteUpload": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					if err := resolver.uploads.Delete(params.Context, stringArg(params, "id")); err != nil {
						return false, err
					}
					return true, nil
				},
			},

			"deleteUploads": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: graphql.FieldConfigArgument{
					"ids": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					if _, err := requireAdmin(params.Context); err != nil {
						return nil, err
					}
					ids := listArg(params, "ids")
					return resolver.uploads.DeleteBatch(params.Context, ids)
				},
			},
		},
	})
}

// decodeResumeDocument converts the JSON scalar value into the typed document.
func decodeResumeDocument(value interface{}) (resume.Document, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return resume.Document{}, fmt.Errorf("graphql: failed to encode resume document: %w", err)
	}

	var document resume.Document
	if err := json.Unmarshal(raw, &document); err != nil {
		return resume.Document{}, fmt.Errorf("graphql: malformed resume document: %w", err)
	}

	return document, nil
}

// # Filter Builders

// postFilterArgs builds the post filter, clamping visibility for non-admins.
func postFilterArgs(params graphql.ResolveParams) post.Filter {
	filter := post.Filter{
		CategoryID: stringArg(params, "categoryId"),
		TagID:      stringArg(params, "tagId"),
		Search:     stringArg(params, "search"),
		OrderBy:    stringArg(params, "orderBy"),
		OrderDir:   stringArg(params, "orderDir"),
	}

	if callerFrom(params.Context).IsAdmin() {
		filter.Published = boolArgPtr(params, "published")
	} else {
		published := true
		filter.Published = &published
	}

	return filter
}

// projectFilterArgs builds the project filter, clamping visibility for non-admins.
func projectFilterArgs(params graphql.ResolveParams) project.Filter {
	filter := project.Filter{
		Search:   stringArg(params, "search"),
		Featured: boolArgPtr(params, "featured"),
		OrderBy:  stringArg(params, "orderBy"),
		OrderDir: stringArg(params, "orderDir"),
	}

	if callerFrom(params.Context).IsAdmin() {
		filter.Published = boolArgPtr(params, "published")
	} else {
		published := true
		filter.Published = &published
	}

	return filter
}

// # Argument Helpers

func stringArg(params graphql.ResolveParams, name string) string {
	if value, ok := params.Args[name].(string); ok {
		return value
	}
	return ""
}

func stringArgPtr(params graphql.ResolveParams, name string) *string {
	if value, ok := params.Args[name].(string); ok {
		return &value
	}
	return nil
}

func boolArgPtr(params graphql.ResolveParams, name string) *bool {
	if value, ok := params.Args[name].(bool); ok {
		return &value
	}
	return nil
}

func listArg(params graphql.ResolveParams, name string) []string {
	raw, ok := params.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

// identifierArg returns whichever of id/slug was supplied.
func identifierArg(params graphql.ResolveParams) (string, error) {
	if id := stringArg(params, "id"); id != "" {
		return id, nil
	}
	if slug := stringArg(params, "slug"); slug != "" {
		return slug, nil
	}
	return "", fmt.Errorf("either id or slug must be provided")
}

// paginationArgs parses limit/page with the shared clamping rules.
func paginationArgs(params graphql.ResolveParams) (limit, offset int) {
	limit = pagination.DefaultLimit
	if value, ok := params.Args["limit"].(int); ok && value >= 1 && value <= pagination.MaxLimit {
		limit = value
	}

	page := pagination.DefaultPage
	if value, ok := params.Args["page"].(int); ok && value >= 1 {
		page = value
	}

	return limit, (page - 1) * limit
}

// # Input Object Helpers

func inputMap(params graphql.ResolveParams) map[string]interface{} {
	if value, ok := params.Args["input"].(map[string]interface{}); ok {
		return value
	}
	return map[string]interface{}{}
}

func mapString(input map[string]interface{}, key string) string {
	if value, ok := input[key].(string); ok {
		return value
	}
	return ""
}

func mapStringPtr(input map[string]interface{}, key string) *string {
	if value, ok := input[key].(string); ok {
		return &value
	}
	return nil
}

func mapBool(input map[string]interface{}, key string) bool {
	value, _ := input[key].(bool)
	return value
}

func mapBoolPtr(input map[string]interface{}, key string) *bool {
	if value, ok := input[key].(bool); ok {
		return &value
	}
	return nil
}

// mapStringList keeps the nil-vs-empty distinction: an absent key yields nil,
// an empty list yields an empty slice.
func mapStringList(input map[string]interface{}, key string) []string {
	raw, ok := input[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}
