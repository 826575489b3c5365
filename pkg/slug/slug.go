// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the human-readable identifiers for posts, projects, categories,
// and tags (e.g., "building-a-blog-in-go"). This package handles
// normalization, accent removal, and character sanitization.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes accented characters and strips the combining
// marks, so "é" becomes a plain "e".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	// invalidRun matches any run of characters that cannot appear in a slug.
	invalidRun = regexp.MustCompile(`[^a-z0-9-]+`)
	// hyphenRun collapses consecutive hyphens into one.
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug:
// accents are stripped, the result is lowercased, and every run of
// disallowed characters becomes a single hyphen.
func From(s string) string {
	ascii, _, _ := transform.String(deaccent, s)
	ascii = strings.ToLower(ascii)

	ascii = invalidRun.ReplaceAllString(ascii, "-")
	ascii = hyphenRun.ReplaceAllString(ascii, "-")

	return strings.Trim(ascii, "-")
}
