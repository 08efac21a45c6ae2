// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BoundingBox is a rectangular region on a page, in PDF points with the
// origin at the top-left corner.
type BoundingBox struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

// PaperMetadata holds bibliographic fields extracted from the first page
// of a paper. Fields that could not be extracted are left at their zero
// value; extraction never fails over a missing field.
type PaperMetadata struct {
	// Title is the paper title, from embedded document metadata when
	// present, otherwise from a first-page heuristic.
	Title string `json:"title" yaml:"title"`

	// Authors lists detected author names in first-seen order,
	// deduplicated and capped at ten.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the abstract body with internal whitespace collapsed.
	// Empty when no abstract marker was found.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Keywords are the entries of the paper's keyword line, if any.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Venue is a well-known conference or journal name matched near the
	// top of the first page.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Year is the publication year in [1990, 2030], or zero when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// DOI is the document identifier matched after a "doi:" marker.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// ArxivID is the preprint identifier matched after an "arxiv:" marker.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
}

// Section is one top-level section of a paper. Sections appear in
// document order; a section's content ends exactly where the next
// detected header begins.
type Section struct {
	// Title is the raw header line as it appears in the document.
	Title string `json:"title" yaml:"title"`

	// Content is the section body, header line excluded.
	Content string `json:"content" yaml:"content"`

	// Level is the nesting depth. Only top-level sections (level 1) are
	// distinguished for now.
	Level int `json:"level" yaml:"level"`

	// PageStart and PageEnd are zero-based page indices. The end page of
	// one section may equal the start page of the next.
	PageStart int `json:"page_start" yaml:"page_start"`
	PageEnd   int `json:"page_end" yaml:"page_end"`
}

// Figure is an embedded image paired with its caption.
type Figure struct {
	// Caption is the first "Figure N" text found on the figure's page, or
	// a page-based placeholder when none was found.
	Caption string `json:"caption" yaml:"caption"`

	// PageNumber is the one-based page the figure appears on.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// BBox is the figure's bounding box on the page.
	BBox BoundingBox `json:"bbox" yaml:"bbox"`

	// FigureNumber is the number parsed from the caption, empty if the
	// caption carries none.
	FigureNumber string `json:"figure_number,omitempty" yaml:"figure_number,omitempty"`
}

// Table is a detected tabular region paired with its caption. Content is
// the row-major serialization of the grid: cells joined with " | ", rows
// joined with newlines.
type Table struct {
	Caption     string      `json:"caption" yaml:"caption"`
	Content     string      `json:"content" yaml:"content"`
	PageNumber  int         `json:"page_number" yaml:"page_number"`
	BBox        BoundingBox `json:"bbox" yaml:"bbox"`
	TableNumber string      `json:"table_number,omitempty" yaml:"table_number,omitempty"`
}

// ParsedPaper is the complete structured form of one document. It is
// immutable after parsing; re-uploading under the same id replaces the
// record wholesale.
type ParsedPaper struct {
	Metadata   PaperMetadata `json:"metadata" yaml:"metadata"`
	Sections   []Section     `json:"sections" yaml:"sections"`
	Figures    []Figure      `json:"figures" yaml:"figures"`
	Tables     []Table       `json:"tables" yaml:"tables"`
	References []string      `json:"references" yaml:"references"`
	FullText   string        `json:"full_text" yaml:"full_text"`
	PageCount  int           `json:"page_count" yaml:"page_count"`
}

// PaperVectors holds the embedding vectors owned by one paper record.
// Vectors are recomputed whenever the paper is re-uploaded and stored
// atomically with the structured document.
type PaperVectors struct {
	// Title and Abstract embed the respective metadata fields. A nil
	// vector means the field was absent or the embedding service was
	// unavailable at upload time.
	Title    []float64 `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract []float64 `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Sections holds one vector per section, in section order.
	Sections [][]float64 `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// SectionSpan locates one section by title and page range, without its
// content.
type SectionSpan struct {
	Title     string `json:"title" yaml:"title"`
	PageStart int    `json:"page_start" yaml:"page_start"`
	PageEnd   int    `json:"page_end" yaml:"page_end"`
}

// PaperInfo is the descriptive form of a stored paper: its summary row
// plus the structural counts and section layout, content omitted.
type PaperInfo struct {
	PaperSummary `yaml:",inline"`

	Abstract string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Venue    string   `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Sections spans every section of the structured record, in document
	// order, so len(Sections) is the section count.
	Sections []SectionSpan `json:"sections" yaml:"sections"`

	FigureCount    int `json:"figure_count" yaml:"figure_count"`
	TableCount     int `json:"table_count" yaml:"table_count"`
	ReferenceCount int `json:"reference_count" yaml:"reference_count"`
}

// PaperSummary is the listing form of a stored paper.
type PaperSummary struct {
	PaperID   string   `json:"paper_id" yaml:"paper_id"`
	Title     string   `json:"title" yaml:"title"`
	Authors   []string `json:"authors" yaml:"authors"`
	Year      int      `json:"year,omitempty" yaml:"year,omitempty"`
	PageCount int      `json:"page_count" yaml:"page_count"`

	// Similarity is the cosine similarity against the query. Only set on
	// search results.
	Similarity float64 `json:"similarity,omitempty" yaml:"similarity,omitempty"`

	// UploadedAt records when the paper entered the store.
	UploadedAt time.Time `json:"uploaded_at,omitempty" yaml:"uploaded_at,omitempty"`
}
