// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package public serves the reader-facing HTML pages.

Pages are rendered server-side from embedded templates; post and project
bodies are Markdown converted with goldmark at request time. Only published
content is ever reachable from this surface.
*/
package public

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// markdown is the shared converter. GFM covers tables, strikethrough, and
// autolinks; raw HTML in the source is dropped since post bodies are
// trusted only as Markdown.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// renderMarkdown converts a Markdown body to HTML.
func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("public: markdown conversion failed: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// templateFuncs are helpers available inside every page template.
var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
}

// loadTemplates parses the embedded template set once at startup.
func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("public: failed to parse templates: %w", err)
	}
	return tmpl, nil
}
