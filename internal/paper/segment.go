// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// sectionPattern is one compiled header matcher. Patterns are tried in
// taxonomy order against every line; the first matching type wins.
type sectionPattern struct {
	sectionType string
	re          *regexp.Regexp
}

// compileSectionPatterns builds one header matcher per taxonomy entry.
// A header line is an optional leading number followed by one of the
// type's keywords and nothing else, case-insensitively.
func compileSectionPatterns(tax types.TaxonomyConfig) ([]sectionPattern, error) {
	patterns := make([]sectionPattern, 0, len(tax.SectionPatterns))
	for _, sp := range tax.SectionPatterns {
		if len(sp.Keywords) == 0 {
			return nil, fmt.Errorf("section type %q has no keywords", sp.Type)
		}
		quoted := make([]string, len(sp.Keywords))
		for i, kw := range sp.Keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		re, err := regexp.Compile(`(?i)^\s*(?:\d+\.?\s*)?(?:` + strings.Join(quoted, "|") + `)\s*$`)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern for section type %q: %w", sp.Type, err)
		}
		patterns = append(patterns, sectionPattern{sectionType: sp.Type, re: re})
	}
	return patterns, nil
}

// pagedLine is one text line annotated with the zero-based page it came from.
type pagedLine struct {
	text string
	page int
}

// sectionStart marks a detected header line.
type sectionStart struct {
	lineIndex   int
	sectionType string
	title       string
	page        int
}

// flattenPages turns the per-page document into a single ordered line
// sequence, preserving page provenance.
func flattenPages(doc *source.Document) []pagedLine {
	var lines []pagedLine
	for pageNum, page := range doc.Pages {
		for _, line := range strings.Split(page.Text, "\n") {
			lines = append(lines, pagedLine{text: line, page: pageNum})
		}
	}
	return lines
}

// segment partitions the document's linear text into typed sections in a
// single pass. A section's content runs from the line after its header to
// the line before the next header (or end of document); sections whose
// content is empty after trimming are discarded.
func segment(doc *source.Document, patterns []sectionPattern) []types.Section {
	lines := flattenPages(doc)

	var starts []sectionStart
	for i, line := range lines {
		clean := strings.TrimSpace(line.text)
		if clean == "" {
			continue
		}
		for _, p := range patterns {
			if p.re.MatchString(clean) {
				starts = append(starts, sectionStart{
					lineIndex:   i,
					sectionType: p.sectionType,
					title:       clean,
					page:        line.page,
				})
				break
			}
		}
	}

	lastPage := len(doc.Pages) - 1

	var sections []types.Section
	for i, start := range starts {
		endIndex := len(lines)
		endPage := lastPage
		if i+1 < len(starts) {
			endIndex = starts[i+1].lineIndex
			endPage = starts[i+1].page
		}

		var body []string
		for _, l := range lines[start.lineIndex+1 : endIndex] {
			body = append(body, l.text)
		}
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content == "" {
			continue
		}

		sections = append(sections, types.Section{
			Title:     start.title,
			Content:   content,
			Level:     1,
			PageStart: start.page,
			PageEnd:   endPage,
		})
	}
	return sections
}

var (
	referencesStartRe = regexp.MustCompile(`(?i)references?\s*\n`)
	referencesEndRe   = regexp.MustCompile(`(?i)\n\s*appendix`)
	referenceMarkRe   = regexp.MustCompile(`^\[\d+\]|^\d+\.`)
)

// extractReferences isolates the bibliography and splits it into discrete
// entries. An entry begins at a line starting with "[n]" or "n."; lines
// without a marker continue the currently open entry. Unmarked text
// before the first marker accumulates into its own leading entry.
func extractReferences(fullText string) []string {
	loc := referencesStartRe.FindStringIndex(fullText)
	if loc == nil {
		return nil
	}
	body := fullText[loc[1]:]
	if stop := referencesEndRe.FindStringIndex(body); stop != nil {
		body = body[:stop[0]]
	}

	var refs []string
	var current strings.Builder
	flush := func() {
		if entry := strings.TrimSpace(current.String()); entry != "" {
			refs = append(refs, entry)
		}
		current.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if referenceMarkRe.MatchString(line) {
			flush()
			current.WriteString(line)
			continue
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(line)
	}

	flush()
	return refs
}
