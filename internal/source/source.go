// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source supplies per-page text and layout regions for documents.
// The structural parser consumes this interface; it never opens files
// itself.
package source

import (
	"context"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// TableRegion is a detected tabular area: its bounding box plus the
// extracted cell grid in row-major order.
type TableRegion struct {
	BBox types.BoundingBox
	Rows [][]string
}

// Page carries everything extracted from one document page.
type Page struct {
	// Text is the page's plain text with original line breaks.
	Text string

	// Images are the bounding boxes of embedded raster images.
	Images []types.BoundingBox

	// Tables are the detected tabular regions.
	Tables []TableRegion
}

// EmbeddedMetadata are document-level fields carried inside the file
// itself, as opposed to fields derived from page text.
type EmbeddedMetadata struct {
	Title        string
	CreationDate string
}

// Document is the raw extraction result for a whole file.
type Document struct {
	Pages []Page
	Meta  EmbeddedMetadata
}

// Source extracts a Document from a file on disk. An extraction failure
// is fatal for that document: the caller rejects the upload and there is
// no partial or resumable state.
type Source interface {
	Extract(ctx context.Context, path string) (*Document, error)
}
