// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// CaptionMatcher associates a figure or table region with caption text
// from its page. The default implementation takes the first textual match
// on the page, not the geometrically nearest one; it is an interface so a
// geometry-aware matcher can be substituted without touching the
// segmenter. Whether several regions on one page should receive distinct
// captions is left open; the default lets them share the first match.
type CaptionMatcher interface {
	FigureCaption(pageText string, pageNumber int) string
	TableCaption(pageText string, pageNumber int) string
}

var (
	figureCaptionRe = regexp.MustCompile(`(?i)fig(?:ure)?\.?\s*\d+[:.]?\s*([^\n]+)`)
	figureNumberRe  = regexp.MustCompile(`(?i)fig(?:ure)?\s*(\d+)`)
	tableCaptionRe  = regexp.MustCompile(`(?i)tab(?:le)?\.?\s*\d+[:.]?\s*([^\n]+)`)
	tableNumberRe   = regexp.MustCompile(`(?i)tab(?:le)?\s*(\d+)`)
)

// firstMatch is the default CaptionMatcher.
type firstMatch struct{}

func (firstMatch) FigureCaption(pageText string, pageNumber int) string {
	if m := figureCaptionRe.FindStringSubmatch(pageText); m != nil {
		return strings.TrimSpace(m[0])
	}
	return fmt.Sprintf("Figure from page %d", pageNumber)
}

func (firstMatch) TableCaption(pageText string, pageNumber int) string {
	if m := tableCaptionRe.FindStringSubmatch(pageText); m != nil {
		return strings.TrimSpace(m[0])
	}
	return fmt.Sprintf("Table from page %d", pageNumber)
}

// buildFigures pairs every embedded image with a caption from its page.
// Page numbers are one-based.
func buildFigures(doc *source.Document, captions CaptionMatcher) []types.Figure {
	var figures []types.Figure
	for i, page := range doc.Pages {
		pageNumber := i + 1
		for _, bbox := range page.Images {
			caption := captions.FigureCaption(page.Text, pageNumber)
			figures = append(figures, types.Figure{
				Caption:      caption,
				PageNumber:   pageNumber,
				BBox:         bbox,
				FigureNumber: submatchOrEmpty(figureNumberRe, caption),
			})
		}
	}
	return figures
}

// buildTables serializes every detected table grid and pairs it with a
// caption from its page.
func buildTables(doc *source.Document, captions CaptionMatcher) []types.Table {
	var tables []types.Table
	for i, page := range doc.Pages {
		pageNumber := i + 1
		for _, region := range page.Tables {
			caption := captions.TableCaption(page.Text, pageNumber)
			tables = append(tables, types.Table{
				Caption:     caption,
				Content:     serializeGrid(region.Rows),
				PageNumber:  pageNumber,
				BBox:        region.BBox,
				TableNumber: submatchOrEmpty(tableNumberRe, caption),
			})
		}
	}
	return tables
}

// serializeGrid joins cells with " | " and rows with newlines.
func serializeGrid(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " | ")
	}
	return strings.Join(lines, "\n")
}

func submatchOrEmpty(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
