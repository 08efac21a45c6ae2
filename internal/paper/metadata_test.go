// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/manoj1906/AI-research-assistant/internal/source"
)

const samplePage = `Attention Is All You Need: A Study of Transformer Architectures

Ashish Vaswani  Noam Shazeer  Niki Parmar

Proceedings of the 31st Conference on Neural Information Processing Systems 2017

Abstract: The dominant sequence transduction models are based on complex
recurrent or convolutional neural networks. We propose a new simple
architecture, the Transformer.
Keywords: attention; transformers; sequence modeling
Introduction
`

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		meta source.EmbeddedMetadata
		want string
	}{
		{
			name: "embedded title wins",
			text: samplePage,
			meta: source.EmbeddedMetadata{Title: "Embedded Title From Document Info"},
			want: "Embedded Title From Document Info",
		},
		{
			name: "longest early line",
			text: samplePage,
			want: "Attention Is All You Need: A Study of Transformer Architectures",
		},
		{
			name: "skips abstract boilerplate",
			text: "Abstract: this line is long enough to be a title candidate\nA Reasonably Long Paper Title Here",
			want: "A Reasonably Long Paper Title Here",
		},
		{
			name: "short lines only",
			text: "Short\nLines\nOnly",
			want: "Unknown Title",
		},
		{
			name: "empty page",
			text: "",
			want: "Unknown Title",
		},
		{
			name: "ignores lines beyond the scan window",
			text: strings.Repeat("x\n", 10) + "A Late But Very Long Candidate Title Line",
			want: "Unknown Title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTitle(tt.text, tt.meta)
			if got != tt.want {
				t.Errorf("extractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAuthors(t *testing.T) {
	got := extractAuthors(samplePage)
	want := []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("extractAuthors() = %v, missing %q", got, w)
		}
	}
}

func TestExtractAuthorsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("Alice ")
		b.WriteString(string(rune('A' + i%26)))
		b.WriteString("aa\n")
	}
	got := extractAuthors(b.String())
	if len(got) > maxAuthors {
		t.Errorf("extractAuthors() returned %d authors, cap is %d", len(got), maxAuthors)
	}
}

func TestExtractAbstract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bounded by keywords",
			text: "Abstract: First sentence.\nSecond  sentence.\nKeywords: a, b",
			want: "First sentence. Second sentence.",
		},
		{
			name: "bounded by numbered header",
			text: "Abstract: Something here.\n1. Introduction\nbody",
			want: "Something here.",
		},
		{
			name: "runs to end of text",
			text: "Abstract: Everything after the marker.",
			want: "Everything after the marker.",
		},
		{
			name: "no abstract",
			text: "No marker anywhere.",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAbstract(tt.text)
			if got != tt.want {
				t.Errorf("extractAbstract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	got := extractKeywords(samplePage)
	want := []string{"attention", "transformers", "sequence modeling"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractVenue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"known acronym", "Published at NeurIPS this year", "NeurIPS"},
		{"publisher", "An ACM publication", "ACM"},
		{"proceedings phrase", "Proceedings of the Something Conference 2021", "Proceedings of the Something Conference 2021"},
		{"none", "no venue mentioned", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractVenue(tt.text)
			if got != tt.want {
				t.Errorf("extractVenue(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		text string
		meta source.EmbeddedMetadata
		want int
	}{
		{
			name: "creation date wins",
			text: "published 2017",
			meta: source.EmbeddedMetadata{CreationDate: "D:20240115093000Z"},
			want: 2024,
		},
		{
			name: "max plausible year from text",
			text: "builds on work from 2015 and 2019",
			want: 2019,
		},
		{
			name: "rejects implausible years",
			text: "founded in 1850, page 2500",
			want: 0,
		},
		{
			name: "nothing",
			text: "no numbers",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractYear(tt.text, tt.meta)
			if got != tt.want {
				t.Errorf("extractYear() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractIdentifiers(t *testing.T) {
	text := "DOI: 10.1234/abcd.5678. arXiv:1706.03762"

	if got, want := extractDOI(text), "10.1234/abcd.5678"; got != want {
		t.Errorf("extractDOI() = %q, want %q", got, want)
	}
	if got, want := extractArxivID(text), "1706.03762"; got != want {
		t.Errorf("extractArxivID() = %q, want %q", got, want)
	}

	if got := extractDOI("no identifiers"); got != "" {
		t.Errorf("extractDOI() = %q, want empty", got)
	}
	if got := extractArxivID("no identifiers"); got != "" {
		t.Errorf("extractArxivID() = %q, want empty", got)
	}
}

func TestExtractMetadataNeverFails(t *testing.T) {
	// A page with nothing recognizable still yields a metadata record.
	meta := extractMetadata("", source.EmbeddedMetadata{})
	if meta.Title != "Unknown Title" {
		t.Errorf("Title = %q, want %q", meta.Title, "Unknown Title")
	}
	if meta.Year != 0 || meta.DOI != "" || meta.ArxivID != "" {
		t.Errorf("expected empty fields, got %+v", meta)
	}
}
