// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package auth

import (
	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/sec"
)

// # Authorization Guards

/*
RequireAuthenticated asserts that a caller identity is present.

Description: Pure authorization check reused by GraphQL resolvers and REST
handlers alike. An anonymous request (nil caller) is rejected before any
business logic runs.

Parameters:
  - caller: *sec.Caller (nil when anonymous)

Returns:
  - *sec.Caller: The same caller, for chaining
  - error: apperr.Unauthorized when anonymous
*/
func RequireAuthenticated(caller *sec.Caller) (*sec.Caller, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	return caller, nil
}

/*
RequireAdmin asserts that the caller is an authenticated administrator.

Description: Implies [RequireAuthenticated]. The distinction between the 401
(anonymous) and 403 (authenticated but not admin) outcomes is preserved so
clients can react correctly.

Parameters:
  - caller: *sec.Caller (nil when anonymous)

Returns:
  - *sec.Caller: The same caller, for chaining
  - error: apperr.Unauthorized when anonymous, apperr.Forbidden when not admin
*/
func RequireAdmin(caller *sec.Caller) (*sec.Caller, error) {
	caller, err := RequireAuthenticated(caller)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		return nil, apperr.Forbidden("Admin access required")
	}

	return caller, nil
}
