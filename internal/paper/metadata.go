// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// Metadata extraction scans only the top of the first page. These bounds
// keep the heuristics away from body text, where author-shaped names and
// four-digit numbers are common.
const (
	titleScanLines   = 10
	authorScanBytes  = 1000
	venueScanBytes   = 2000
	yearScanBytes    = 2000
	minTitleLength   = 20
	maxAuthors       = 10
	yearMin, yearMax = 1990, 2030
)

var (
	// Author name shapes: "First Last", "F. Last", "First F. Last".
	authorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z]\.\s*[A-Z][a-z]+`),
		regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`),
		regexp.MustCompile(`[A-Z]\.\s*[A-Z][a-z]+`),
	}

	abstractStartRe = regexp.MustCompile(`(?i)abstract[:\s]`)
	abstractEndRe   = regexp.MustCompile(`(?i)\n\s*(keywords|introduction|\d+\.)`)
	keywordStartRe  = regexp.MustCompile(`(?i)keywords?[:\s]`)
	keywordEndRe    = regexp.MustCompile(`(?i)\n\s*(introduction|\d+\.)`)
	keywordSplitRe  = regexp.MustCompile(`[,;·•]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	venuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(ICML|NeurIPS|ICLR|AAAI|IJCAI|ACL|EMNLP|NAACL|COLING)\b`),
		regexp.MustCompile(`(?i)\b(IEEE|ACM|Nature|Science|PNAS)\b`),
		regexp.MustCompile(`(?i)Proceedings of the[^\n]*?\d{4}`),
		regexp.MustCompile(`(?i)Conference on[^\n]*?\d{4}`),
	}

	yearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	doiRe     = regexp.MustCompile(`(?i)doi[:\s]*(10\.\d+/\S+)`)
	arxivIDRe = regexp.MustCompile(`(?i)arxiv[:\s]*(\d{4}\.\d{4,5})`)
)

// extractMetadata derives bibliographic fields from the first page's text
// plus any embedded document metadata. Missing fields stay empty; this
// path never fails.
func extractMetadata(firstPage string, meta source.EmbeddedMetadata) types.PaperMetadata {
	return types.PaperMetadata{
		Title:    extractTitle(firstPage, meta),
		Authors:  extractAuthors(firstPage),
		Abstract: extractAbstract(firstPage),
		Keywords: extractKeywords(firstPage),
		Venue:    extractVenue(firstPage),
		Year:     extractYear(firstPage, meta),
		DOI:      extractDOI(firstPage),
		ArxivID:  extractArxivID(firstPage),
	}
}

// extractTitle prefers the embedded title field. Otherwise it scans the
// first lines of the page and picks the longest one that is not obvious
// boilerplate: titles are typically the longest non-trivial line near
// the top.
func extractTitle(text string, meta source.EmbeddedMetadata) string {
	if t := strings.TrimSpace(meta.Title); t != "" {
		return t
	}

	lines := strings.Split(text, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}

	best := ""
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= minTitleLength {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "abstract") || strings.HasPrefix(lower, "introduction") {
			continue
		}
		if len(line) > len(best) {
			best = line
		}
	}

	if best == "" {
		return "Unknown Title"
	}
	return best
}

// extractAuthors collects name-shaped matches from the top of the page,
// deduplicated in first-seen order and capped at maxAuthors.
func extractAuthors(text string) []string {
	if len(text) > authorScanBytes {
		text = text[:authorScanBytes]
	}

	seen := make(map[string]bool)
	var authors []string
	for _, re := range authorPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			authors = append(authors, m)
			if len(authors) >= maxAuthors {
				return authors
			}
		}
	}
	return authors
}

// extractAbstract captures the text between an "abstract" marker and the
// next of keywords, introduction, a numbered header, or end of text.
// Internal whitespace is collapsed to single spaces.
func extractAbstract(text string) string {
	return boundedCapture(text, abstractStartRe, abstractEndRe)
}

// extractKeywords captures the keyword line and splits it on the common
// separators (comma, semicolon, middle dot, bullet).
func extractKeywords(text string) []string {
	raw := boundedCapture(text, keywordStartRe, keywordEndRe)
	if raw == "" {
		return nil
	}

	var keywords []string
	for _, k := range keywordSplitRe.Split(raw, -1) {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// boundedCapture returns the whitespace-collapsed text between the end of
// the first start match and the beginning of the first end match after
// it, or through end of text when no end marker follows.
func boundedCapture(text string, start, end *regexp.Regexp) string {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if stop := end.FindStringIndex(body); stop != nil {
		body = body[:stop[0]]
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(body, " "))
}

// extractVenue matches a fixed list of well-known venue patterns near the
// top of the page.
func extractVenue(text string) string {
	if len(text) > venueScanBytes {
		text = text[:venueScanBytes]
	}
	for _, re := range venuePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractYear prefers a year parsed from the embedded creation date.
// Otherwise it collects plausible four-digit tokens near the top of the
// page and returns the maximum. Taking the most recent plausible year is
// an open assumption: it can be wrong for documents that cite future
// work or print an old year first.
func extractYear(text string, meta source.EmbeddedMetadata) int {
	if y := yearFromCreationDate(meta.CreationDate); y != 0 {
		return y
	}

	if len(text) > yearScanBytes {
		text = text[:yearScanBytes]
	}

	best := 0
	for _, m := range yearRe.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || y < yearMin || y > yearMax {
			continue
		}
		if y > best {
			best = y
		}
	}
	return best
}

// yearFromCreationDate pulls the first plausible year out of an embedded
// creation-date string (commonly "D:20240115..." in PDFs).
func yearFromCreationDate(date string) int {
	m := yearRe.FindString(date)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil || y < yearMin || y > yearMax {
		return 0
	}
	return y
}

func extractDOI(text string) string {
	if m := doiRe.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(m[1], ".,;")
	}
	return ""
}

func extractArxivID(text string) string {
	if m := arxivIDRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
