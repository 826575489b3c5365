// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhngo/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Building a Blog in Go", "building-a-blog-in-go"},
		{"accents_removed", "Café Résumé", "cafe-resume"},
		{"special_chars", "Go 1.24: What's New?", "go-1-24-what-s-new"},
		{"multiple_spaces", "hello    world", "hello-world"},
		{"leading_trailing", "  --frontend--  ", "frontend"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
