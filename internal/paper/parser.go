// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paper reconstructs the logical structure of scientific-paper
// documents: metadata, typed sections, figures, tables, and references.
package paper

import (
	"context"
	"fmt"
	"strings"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// Parser turns a raw document into a ParsedPaper using the injected
// section taxonomy. It holds compiled patterns only; Parse is safe for
// concurrent use.
type Parser struct {
	src      source.Source
	patterns []sectionPattern
	captions CaptionMatcher
}

// NewParser compiles the taxonomy's section patterns and returns a
// ready-to-use parser with the default first-textual-match caption
// matcher.
func NewParser(src source.Source, tax types.TaxonomyConfig) (*Parser, error) {
	if len(tax.SectionPatterns) == 0 {
		tax = types.DefaultTaxonomy()
	}
	patterns, err := compileSectionPatterns(tax)
	if err != nil {
		return nil, err
	}
	return &Parser{src: src, patterns: patterns, captions: firstMatch{}}, nil
}

// SetCaptionMatcher replaces the caption association strategy.
func (p *Parser) SetCaptionMatcher(m CaptionMatcher) { p.captions = m }

// Parse extracts the document at path and reconstructs its structure.
// A source failure makes the whole parse fail; a paper either parses
// completely or is rejected.
func (p *Parser) Parse(ctx context.Context, path string) (*types.ParsedPaper, error) {
	doc, err := p.src.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting document: %w", err)
	}
	return p.ParseDocument(doc), nil
}

// ParseDocument reconstructs structure from an already-extracted
// document.
func (p *Parser) ParseDocument(doc *source.Document) *types.ParsedPaper {
	fullText := joinPages(doc)

	firstPage := ""
	if len(doc.Pages) > 0 {
		firstPage = doc.Pages[0].Text
	}

	return &types.ParsedPaper{
		Metadata:   extractMetadata(firstPage, doc.Meta),
		Sections:   segment(doc, p.patterns),
		Figures:    buildFigures(doc, p.captions),
		Tables:     buildTables(doc, p.captions),
		References: extractReferences(fullText),
		FullText:   fullText,
		PageCount:  len(doc.Pages),
	}
}

func joinPages(doc *source.Document) string {
	var b strings.Builder
	for _, page := range doc.Pages {
		b.WriteString(page.Text)
		b.WriteString("\n")
	}
	return b.String()
}
