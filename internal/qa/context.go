// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"sort"
	"strings"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

const (
	// sectionSeparator joins "{title}\n{content}" blocks in the context.
	sectionSeparator = "\n\n"

	// minTruncatedBlock is the smallest budget remainder worth filling
	// with a truncated section.
	minTruncatedBlock = 100

	// maxSelectedSections caps how many sections feed one context.
	maxSelectedSections = 3

	ellipsis = "..."
)

// ContextBuilder selects and orders the sections most relevant to a
// question type and assembles them into a bounded context string.
type ContextBuilder struct {
	taxonomy types.TaxonomyConfig
	maxLen   int
}

// NewContextBuilder returns a builder over the given taxonomy.
// maxContextLength values below 1 fall back to the default.
func NewContextBuilder(tax types.TaxonomyConfig, maxContextLength int) *ContextBuilder {
	if len(tax.QuestionPriorities) == 0 {
		tax = types.DefaultTaxonomy()
	}
	if maxContextLength < 1 {
		maxContextLength = types.DefaultMaxContextLength
	}
	return &ContextBuilder{taxonomy: tax, maxLen: maxContextLength}
}

// MaxContextLength returns the configured context budget.
func (b *ContextBuilder) MaxContextLength() int { return b.maxLen }

// Select returns the up-to-three sections most relevant to the question
// type, ordered by the index of the first priority keyword their title
// matches. When no title matches a priority keyword the abstract or
// introduction stands in; when those are absent too the selection is
// empty and rule-mode synthesis falls back to the paper's full section
// list.
func (b *ContextBuilder) Select(qtype types.QuestionType, paper *types.ParsedPaper) []types.Section {
	priorities := b.taxonomy.PrioritiesFor(qtype)

	var selected []types.Section
	for _, sec := range paper.Sections {
		if priorityIndex(sec.Title, priorities) < len(priorities) {
			selected = append(selected, sec)
		}
	}

	if len(selected) == 0 {
		for _, sec := range paper.Sections {
			title := strings.ToLower(sec.Title)
			if strings.Contains(title, "abstract") || strings.Contains(title, "introduction") {
				selected = append(selected, sec)
			}
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return priorityIndex(selected[i].Title, priorities) < priorityIndex(selected[j].Title, priorities)
	})

	if len(selected) > maxSelectedSections {
		selected = selected[:maxSelectedSections]
	}
	return selected
}

// priorityIndex returns the position of the first priority keyword
// contained in the title, or len(priorities) when none match.
func priorityIndex(title string, priorities []string) int {
	title = strings.ToLower(title)
	for i, p := range priorities {
		if strings.Contains(title, p) {
			return i
		}
	}
	return len(priorities)
}

// Build assembles the context for a question type. Blocks of
// "{title}\n{content}" are concatenated in relevance order until the
// budget is reached; the block that would overflow is truncated to the
// remaining budget when at least minTruncatedBlock characters remain,
// and dropped otherwise. The result never exceeds MaxContextLength.
func (b *ContextBuilder) Build(qtype types.QuestionType, paper *types.ParsedPaper) (string, []types.Section) {
	sections := b.Select(qtype, paper)

	var parts []string
	current := 0
	for _, sec := range sections {
		block := sec.Title + "\n" + sec.Content

		sep := 0
		if len(parts) > 0 {
			sep = len(sectionSeparator)
		}

		if current+sep+len(block) <= b.maxLen {
			parts = append(parts, block)
			current += sep + len(block)
			continue
		}

		remaining := b.maxLen - current - sep
		if remaining > minTruncatedBlock {
			parts = append(parts, block[:remaining-len(ellipsis)]+ellipsis)
		}
		break
	}

	return strings.Join(parts, sectionSeparator), sections
}
