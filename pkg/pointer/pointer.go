// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package pointer contains small generic helpers for creating and
dereferencing pointers.

Update payloads model "field absent" as a nil pointer, so service code
constantly converts between values and pointers. These helpers keep
that conversion to a single call:

  - To: Takes the address of a value literal.
  - Val: Dereferences, falling back to the zero value on nil.
  - Fallback: Dereferences, falling back to a caller-supplied value on nil.
*/
package pointer

// To returns a pointer to v. Handy for filling optional struct
// fields from literals (e.g. pointer.To("draft")).
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
