// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/minhngo/folio/internal/content/post"
	"github.com/minhngo/folio/internal/users/auth"
)

// schemaTypes holds the object types shared between queries and mutations.
type schemaTypes struct {
	user           *graphql.Object
	session        *graphql.Object
	category       *graphql.Object
	tag            *graphql.Object
	tagRef         *graphql.Object
	post           *graphql.Object
	project        *graphql.Object
	resumeRevision *graphql.Object
	upload         *graphql.Object
}

// newSchemaTypes builds the output types. Most fields lean on the default
// resolver, which matches GraphQL names against struct fields and json tags;
// explicit resolvers appear only where a field is computed.
func newSchemaTypes(resolver *Resolver) *schemaTypes {
	types := &schemaTypes{}

	types.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"role":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.session = graphql.NewObject(graphql.ObjectConfig{
		Name: "Session",
		Fields: graphql.Fields{
			"accessToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return params.Source.(*auth.LoginSession).Tokens.AccessToken, nil
				},
			},
			"refreshToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return params.Source.(*auth.LoginSession).Tokens.RefreshToken, nil
				},
			},
			"accessExpiry": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return params.Source.(*auth.LoginSession).Tokens.AccessExpiry, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(types.user),
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					return params.Source.(*auth.LoginSession).User, nil
				},
			},
		},
	})

	types.category = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"postCount":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.tag = graphql.NewObject(graphql.ObjectConfig{
		Name: "Tag",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"postCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.tagRef = graphql.NewObject(graphql.ObjectConfig{
		Name: "TagRef",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	types.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"excerpt":     &graphql.Field{Type: graphql.String},
			"content":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"published":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"publishedAt": &graphql.Field{Type: graphql.DateTime},
			"authorId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"categoryId":  &graphql.Field{Type: graphql.ID},
			"tags":        &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(types.tagRef))},
			"category": &graphql.Field{
				Type: types.category,
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					entry := params.Source.(*post.Post)
					if entry.CategoryID == nil {
						return nil, nil
					}
					return resolver.categories.Get(params.Context, *entry.CategoryID)
				},
			},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.project = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content":      &graphql.Field{Type: graphql.String},
			"technologies": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"githubUrl":    &graphql.Field{Type: graphql.String},
			"liveUrl":      &graphql.Field{Type: graphql.String},
			"imageUrl":     &graphql.Field{Type: graphql.String},
			"featured":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"published":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":    &graphql.Field{Type: graphql.DateTime},
			"updatedAt":    &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.resumeRevision = graphql.NewObject(graphql.ObjectConfig{
		Name: "ResumeRevision",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"document":  &graphql.Field{Type: graphql.NewNonNull(jsonScalar)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	types.upload = graphql.NewObject(graphql.ObjectConfig{
		Name: "Upload",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"filename":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"originalName": &graphql.Field{Type: graphql.String},
			"folder":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"url":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"size":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"mimeType":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"uploaderId":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"createdAt":    &graphql.Field{Type: graphql.DateTime},
		},
	})

	return types
}

// # Input Types

var postInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"excerpt":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"published":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"categoryId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"tagIds":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	},
})

var projectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"technologies": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"githubUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"liveUrl":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"imageUrl":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"featured":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"published":    &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})
