// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"context"
	"errors"
	"testing"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// stubSource returns a canned document or error.
type stubSource struct {
	doc *source.Document
	err error
}

func (s stubSource) Extract(_ context.Context, _ string) (*source.Document, error) {
	return s.doc, s.err
}

func TestParseDocument(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{
			{
				Text: "A Sufficiently Long Paper Title For Extraction\n" +
					"Jane Doe  John Smith\n" +
					"Abstract\nWe present a system.\n" +
					"1. Introduction\nIt is introduced here.",
				Images: []types.BoundingBox{{X0: 1}},
			},
			{Text: "References\n[1] Prior work.\n"},
		},
		Meta: source.EmbeddedMetadata{CreationDate: "D:20230301"},
	}

	parser, err := NewParser(stubSource{doc: doc}, types.TaxonomyConfig{})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	paper, err := parser.Parse(context.Background(), "whatever.pdf")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if paper.Metadata.Title != "A Sufficiently Long Paper Title For Extraction" {
		t.Errorf("Title = %q", paper.Metadata.Title)
	}
	if paper.Metadata.Year != 2023 {
		t.Errorf("Year = %d, want 2023", paper.Metadata.Year)
	}
	if paper.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", paper.PageCount)
	}
	if len(paper.Sections) != 3 {
		t.Fatalf("Sections = %d, want 3 (%+v)", len(paper.Sections), paper.Sections)
	}
	if paper.Sections[0].Title != "Abstract" || paper.Sections[1].Title != "1. Introduction" {
		t.Errorf("section titles = %q, %q", paper.Sections[0].Title, paper.Sections[1].Title)
	}
	if len(paper.Figures) != 1 {
		t.Errorf("Figures = %d, want 1", len(paper.Figures))
	}
	if len(paper.References) != 1 || paper.References[0] != "[1] Prior work." {
		t.Errorf("References = %v", paper.References)
	}
	if paper.FullText == "" {
		t.Error("FullText is empty")
	}
}

func TestParseSourceFailureIsFatal(t *testing.T) {
	wantErr := errors.New("corrupt file")
	parser, err := NewParser(stubSource{err: wantErr}, types.TaxonomyConfig{})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	_, err = parser.Parse(context.Background(), "bad.pdf")
	if !errors.Is(err, wantErr) {
		t.Errorf("Parse error = %v, want wrapped %v", err, wantErr)
	}
}
