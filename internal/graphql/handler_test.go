// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerTransport(t *testing.T) {
	handler := NewHandler(newFixture(t).schema)

	t.Run("POST executes the document", func(t *testing.T) {
		body := `{"query": "{ posts { title } }"}`
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Data struct {
				Posts []struct {
					Title string `json:"title"`
				} `json:"posts"`
			} `json:"data"`
			Errors []any `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Errors)
		require.Len(t, response.Data.Posts, 1)
		assert.Equal(t, "Public Post", response.Data.Posts[0].Title)
	})

	t.Run("GET executes the query string", func(t *testing.T) {
		target := "/api/graphql?query=" + url.QueryEscape(`{ posts { title } }`)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Public Post")
	})

	t.Run("resolver errors keep a 200 status", func(t *testing.T) {
		body := `{"query": "mutation { deletePost(id: \"p1\") }"}`
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "errors")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unsupported method is a 405", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/graphql", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
