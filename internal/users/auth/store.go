// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		CountAdmins returns the number of accounts holding the ADMIN role.

		Used by the startup bootstrap to decide whether a seed admin is needed.

		Parameters:
		  - context: context.Context

		Returns:
		  - int: Number of admin accounts
		  - error: Database retrieval failures
	*/
	CountAdmins(context context.Context) (int, error)
}

// # Volatile Data Access

// AttemptRepository defines the contract for the failed-login throttle counters.
//
// Counters are keyed by email+IP and expire on their own; a successful login
// resets the counter early.
type AttemptRepository interface {

	/*
		Increment bumps the failed-attempt counter for the given key and
		returns the new count. The TTL window starts on the first failure.

		Parameters:
		  - context: context.Context
		  - key: string (email+IP composite)

		Returns:
		  - int64: Count after increment
		  - error: Persistence failures
	*/
	Increment(context context.Context, key string) (int64, error)

	/*
		Count returns the current failed-attempt count without modifying it.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - int64: Current count (0 when absent)
		  - error: Retrieval failures
	*/
	Count(context context.Context, key string) (int64, error)

	/*
		Reset clears the counter after a successful authentication.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - error: Deletion failures
	*/
	Reset(context context.Context, key string) error
}
