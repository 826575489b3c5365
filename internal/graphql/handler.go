// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/minhngo/folio/internal/platform/respond"
	"github.com/minhngo/folio/internal/platform/validate"
)

// remoteIPKey carries the request's client IP into resolvers that need it
// (the login throttle keys on email+IP).
type remoteIPKey struct{}

// remoteIPFrom returns the client IP stored by the handler, or "".
func remoteIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(remoteIPKey{}).(string)
	return ip
}

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against a schema.
type Handler struct {
	schema graphql.Schema
}

// NewHandler constructs the endpoint handler.
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

/*
ServeHTTP handles GraphQL documents sent as a POST body or GET query string.

Description: Resolver-level failures surface inside the standard "errors"
array with a 200 status; only a malformed request body is an HTTP-level
error. The caller identity was already attached to the context by the
authentication middleware upstream.
*/
func (handler *Handler) ServeHTTP(writer http.ResponseWriter, httpRequest *http.Request) {
	var body request

	switch httpRequest.Method {
	case http.MethodPost:
		if err := json.NewDecoder(httpRequest.Body).Decode(&body); err != nil {
			respond.Error(writer, httpRequest, validate.ErrInvalidJSON)
			return
		}
	case http.MethodGet:
		query := httpRequest.URL.Query()
		body.Query = query.Get("query")
		body.OperationName = query.Get("operationName")
		if raw := query.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &body.Variables); err != nil {
				respond.Error(writer, httpRequest, validate.ErrInvalidJSON)
				return
			}
		}
	default:
		http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.WithValue(httpRequest.Context(), remoteIPKey{}, clientIP(httpRequest))

	result := graphql.Do(graphql.Params{
		Schema:         handler.schema,
		RequestString:  body.Query,
		OperationName:  body.OperationName,
		VariableValues: body.Variables,
		Context:        ctx,
	})

	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(writer).Encode(result)
}

// clientIP strips the port from the remote address when present.
func clientIP(httpRequest *http.Request) string {
	host, _, err := net.SplitHostPort(httpRequest.RemoteAddr)
	if err != nil {
		return httpRequest.RemoteAddr
	}
	return host
}
