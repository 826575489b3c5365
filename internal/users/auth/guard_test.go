// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/internal/users/auth"
)

/*
TestRequireAuthenticated verifies the anonymous vs authenticated distinction.
*/
func TestRequireAuthenticated(t *testing.T) {
	tests := []struct {
		name     string
		caller   *sec.Caller
		wantCode string
	}{
		{"anonymous_rejected", nil, "UNAUTHORIZED"},
		{"user_allowed", &sec.Caller{ID: "u1", Role: sec.RoleUser}, ""},
		{"admin_allowed", &sec.Caller{ID: "a1", Role: sec.RoleAdmin}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.RequireAuthenticated(tt.caller)

			if tt.wantCode != "" {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantCode, ae.Code)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Same(t, tt.caller, got)
			}
		})
	}
}

/*
TestRequireAdmin verifies the 401 (anonymous) vs 403 (non-admin) split.
*/
func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		caller   *sec.Caller
		wantCode string
	}{
		{"anonymous_gets_401", nil, "UNAUTHORIZED"},
		{"regular_user_gets_403", &sec.Caller{ID: "u1", Role: sec.RoleUser}, "FORBIDDEN"},
		{"admin_allowed", &sec.Caller{ID: "a1", Role: sec.RoleAdmin}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.RequireAdmin(tt.caller)

			if tt.wantCode != "" {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantCode, ae.Code)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Same(t, tt.caller, got)
			}
		})
	}
}
