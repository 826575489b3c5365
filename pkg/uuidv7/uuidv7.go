// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Every Folio table uses UUIDv7 primary keys: the timestamp prefix keeps
// inserts roughly append-ordered in the index, which random UUIDv4 keys
// defeat.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only when the OS entropy source fails, which is not a condition
// the application can recover from anyway.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
