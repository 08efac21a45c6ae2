// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"reflect"
	"testing"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

func mustPatterns(t *testing.T) []sectionPattern {
	t.Helper()
	patterns, err := compileSectionPatterns(types.DefaultTaxonomy())
	if err != nil {
		t.Fatalf("compileSectionPatterns: %v", err)
	}
	return patterns
}

func TestSegment(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{
			{Text: "Paper Title\nAbstract\nWe study things.\n1. Introduction\nThis paper begins."},
			{Text: "continued introduction text\n2. Methodology\nWe use a model."},
			{Text: "4 Conclusion\nIt works."},
		},
	}

	sections := segment(doc, mustPatterns(t))

	want := []types.Section{
		{Title: "Abstract", Content: "We study things.", Level: 1, PageStart: 0, PageEnd: 0},
		{Title: "1. Introduction", Content: "This paper begins.\ncontinued introduction text", Level: 1, PageStart: 0, PageEnd: 1},
		{Title: "2. Methodology", Content: "We use a model.", Level: 1, PageStart: 1, PageEnd: 2},
		{Title: "4 Conclusion", Content: "It works.", Level: 1, PageStart: 2, PageEnd: 2},
	}

	if !reflect.DeepEqual(sections, want) {
		t.Errorf("segment() = %+v, want %+v", sections, want)
	}
}

func TestSegmentFirstTypeWins(t *testing.T) {
	// "Summary" is a keyword of both abstract and conclusion; the taxonomy
	// lists abstract first, so an early Summary header types as abstract.
	doc := &source.Document{
		Pages: []source.Page{{Text: "Summary\nThe whole story."}},
	}

	sections := segment(doc, mustPatterns(t))
	if len(sections) != 1 {
		t.Fatalf("segment() returned %d sections, want 1", len(sections))
	}
	if sections[0].Title != "Summary" {
		t.Errorf("Title = %q, want %q", sections[0].Title, "Summary")
	}
}

func TestSegmentDiscardsEmptySections(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{{Text: "Introduction\n\nMethodology\nActual content."}},
	}

	sections := segment(doc, mustPatterns(t))
	if len(sections) != 1 {
		t.Fatalf("segment() returned %d sections, want 1", len(sections))
	}
	if sections[0].Title != "Methodology" {
		t.Errorf("Title = %q, want %q", sections[0].Title, "Methodology")
	}
}

func TestSegmentNoHeaders(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{{Text: "just prose with no recognizable headers at all"}},
	}
	if sections := segment(doc, mustPatterns(t)); len(sections) != 0 {
		t.Errorf("segment() = %+v, want none", sections)
	}
}

func TestSegmentHeaderMustStandAlone(t *testing.T) {
	// A sentence mentioning a keyword mid-line is not a header.
	doc := &source.Document{
		Pages: []source.Page{{Text: "The introduction of noise hurts accuracy.\nmore prose"}},
	}
	if sections := segment(doc, mustPatterns(t)); len(sections) != 0 {
		t.Errorf("segment() = %+v, want none", sections)
	}
}

func TestExtractReferences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bracketed entries with continuations",
			text: "body text\nReferences\n[1] Smith et al.\nA long paper title.\n[2] Jones.\n",
			want: []string{"[1] Smith et al. A long paper title.", "[2] Jones."},
		},
		{
			name: "numbered entries",
			text: "References\n1. First entry\n2. Second entry\n",
			want: []string{"1. First entry", "2. Second entry"},
		},
		{
			name: "stops at appendix",
			text: "References\n[1] Only entry.\nAppendix\n[2] Not a reference.\n",
			want: []string{"[1] Only entry."},
		},
		{
			name: "preamble before first marker becomes its own entry",
			text: "References\nsome stray line\nanother stray line\n[1] Real entry.\n",
			want: []string{"some stray line another stray line", "[1] Real entry."},
		},
		{
			name: "no references section",
			text: "a paper without a bibliography",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractReferences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractReferences() = %v, want %v", got, tt.want)
			}
		})
	}
}
