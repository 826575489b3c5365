// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package upload implements file uploads to blob storage.

Uploaded files land in an S3-compatible bucket under a per-folder prefix and
are tracked in the database so they can be listed and deleted later. The MIME
allow-list and the size ceiling are enforced before a single byte reaches the
bucket.
*/
package upload

import (
	"strings"
	"time"
)

// File is the stored record of one uploaded object.
type File struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Key          string    `json:"-"`
	Folder       string    `json:"folder"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	UploaderID   string    `json:"uploader_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// DefaultFolder is used when the client does not name one.
const DefaultFolder = "uploads"

// allowedMimeTypes maps accepted content types to their canonical extension.
var allowedMimeTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// ExtensionFor returns the canonical file extension for an accepted MIME
// type, or false when the type is not allowed.
func ExtensionFor(mimeType string) (string, bool) {
	extension, ok := allowedMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]
	return extension, ok
}

// SanitizeFolder flattens a client-supplied folder name to a single safe
// path segment. Anything that walks the tree collapses to the default.
func SanitizeFolder(folder string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	switch {
	case folder == "", folder == ".":
		return DefaultFolder
	case strings.Contains(folder, ".."):
		return DefaultFolder
	case strings.ContainsAny(folder, `/\`):
		return DefaultFolder
	}
	return folder
}
