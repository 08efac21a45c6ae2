// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"regexp"
	"strings"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// ruleExtractor is one rule-mode answer strategy. Extractors never fail:
// a paper with no usable material yields a fixed low-confidence answer
// instead of an error.
type ruleExtractor func(question string, sections []types.Section) types.Answer

// ruleExtractors dispatches by question type. Dataset and comparison
// questions have no dedicated extractor and take the keyword-overlap
// path.
var ruleExtractors = map[types.QuestionType]ruleExtractor{
	types.QuestionContribution: answerContribution,
	types.QuestionMethodology:  answerMethodology,
	types.QuestionResults:      answerResults,
	types.QuestionLimitations:  answerLimitations,
	types.QuestionSummary:      answerSummary,
	types.QuestionDataset:      answerGeneral,
	types.QuestionComparison:   answerGeneral,
	types.QuestionGeneral:      answerGeneral,
}

// contributionIndicators and limitationIndicators are the phrasings that
// mark a contribution or limitation statement. Every match contributes a
// window of surrounding text to the answer.
var contributionIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)contributions?\s*(?:of this work|include|are|is)`),
	regexp.MustCompile(`(?i)we\s*(?:propose|introduce|present|develop|contribute)`),
	regexp.MustCompile(`(?i)(?:main|key|primary|novel)\s*(?:contribution|novelty|innovation)`),
	regexp.MustCompile(`(?i)our\s*(?:approach|method|work|contribution)`),
	regexp.MustCompile(`(?i)(?:significance|importance).*?(?:work|research)`),
}

var limitationIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)limitations?\s*(?:of|include|are|is)`),
	regexp.MustCompile(`(?i)(?:however|but|although).*?(?:limitation|constraint|issue)`),
	regexp.MustCompile(`(?i)(?:weakness|drawback|shortcoming)`),
	regexp.MustCompile(`(?i)future\s*work`),
	regexp.MustCompile(`(?i)(?:cannot|unable to|difficult to)`),
}

// gatherIndicatorWindows collects a window of text around every indicator
// match across all sections, in section order. It returns the accumulated
// text and the first section that contributed to it.
func gatherIndicatorWindows(sections []types.Section, indicators []*regexp.Regexp, before, after int) (string, *types.Section) {
	var buf strings.Builder
	var first *types.Section

	for i := range sections {
		content := sections[i].Content
		for _, re := range indicators {
			for _, loc := range re.FindAllStringIndex(content, -1) {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(window(content, loc[0]-before, loc[1]+after, 0))
				if first == nil {
					first = &sections[i]
				}
			}
		}
	}
	return buf.String(), first
}

// answerContribution accumulates a window around every contribution
// indicator it finds; the answer is the head of that buffer.
func answerContribution(_ string, sections []types.Section) types.Answer {
	text, src := gatherIndicatorWindows(sections, contributionIndicators, 100, 200)
	if src == nil {
		return types.Answer{
			Text:       "The main contributions are not explicitly stated in the analyzed sections.",
			Confidence: 0.7,
			Type:       types.QuestionContribution,
		}
	}

	return types.Answer{
		Text:          head(text, 500),
		Confidence:    0.7,
		Evidence:      head(text, 300),
		SourceSection: src.Title,
		PageNumber:    src.PageStart,
		Type:          types.QuestionContribution,
	}
}

// answerMethodology prefers sections whose titles name the method and
// falls back to method-flavored content anywhere in the candidates.
func answerMethodology(_ string, sections []types.Section) types.Answer {
	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		if strings.Contains(title, "method") || strings.Contains(title, "approach") || strings.Contains(title, "model") {
			return types.Answer{
				Text:          head(sec.Content, 500),
				Confidence:    0.7,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionMethodology,
			}
		}
	}

	for _, sec := range sections {
		content := strings.ToLower(sec.Content)
		for _, hint := range []string{"algorithm", "approach", "method", "technique"} {
			if strings.Contains(content, hint) {
				return types.Answer{
					Text:          head(sec.Content, 500),
					Confidence:    0.7,
					Evidence:      head(sec.Content, 300),
					SourceSection: sec.Title,
					PageNumber:    sec.PageStart,
					Type:          types.QuestionMethodology,
				}
			}
		}
	}

	return types.Answer{
		Text:       "The methodology is not clearly described in the analyzed sections.",
		Confidence: 0.7,
		Type:       types.QuestionMethodology,
	}
}

// answerResults reports the first results-titled section.
func answerResults(_ string, sections []types.Section) types.Answer {
	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		if strings.Contains(title, "result") || strings.Contains(title, "experiment") || strings.Contains(title, "evaluation") {
			return types.Answer{
				Text:          head(sec.Content, 500),
				Confidence:    0.6,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionResults,
			}
		}
	}

	return types.Answer{
		Text:       "Specific results are not available in the analyzed sections.",
		Confidence: 0.6,
		Type:       types.QuestionResults,
	}
}

// answerLimitations accumulates a window around every limitation
// indicator it finds, with a tighter window than contributions since
// limitation statements tend to be single sentences.
func answerLimitations(_ string, sections []types.Section) types.Answer {
	text, src := gatherIndicatorWindows(sections, limitationIndicators, 50, 150)
	if src == nil {
		return types.Answer{
			Text:       "Limitations are not explicitly discussed in the analyzed sections.",
			Confidence: 0.6,
			Type:       types.QuestionLimitations,
		}
	}

	return types.Answer{
		Text:          head(text, 500),
		Confidence:    0.6,
		Evidence:      head(text, 300),
		SourceSection: src.Title,
		PageNumber:    src.PageStart,
		Type:          types.QuestionLimitations,
	}
}

// substantialSectionLength is the minimum content length a section needs
// to stand in for a missing abstract when summarizing.
const substantialSectionLength = 200

// answerSummary builds an overview. An abstract or introduction is the
// preferred source at high confidence; anything synthesized from other
// material is reported at reduced confidence so the caller can tell a
// real abstract from an improvised one.
func answerSummary(_ string, sections []types.Section) types.Answer {
	// The abstract is already a summary; return it whole.
	for _, sec := range sections {
		if strings.Contains(strings.ToLower(sec.Title), "abstract") {
			return types.Answer{
				Text:          strings.TrimSpace(sec.Content),
				Confidence:    0.8,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionSummary,
			}
		}
	}

	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		if strings.Contains(title, "introduction") || strings.Contains(title, "background") {
			return types.Answer{
				Text:          head(sec.Content, 800),
				Confidence:    0.8,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionSummary,
			}
		}
	}

	for _, sec := range sections {
		if len(sec.Content) > substantialSectionLength {
			return types.Answer{
				Text:          "This paper covers: " + head(sec.Content, 600),
				Confidence:    0.4,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionSummary,
			}
		}
	}

	if len(sections) > 0 {
		var parts []string
		for _, sec := range sections {
			if len(parts) == 3 {
				break
			}
			if strings.TrimSpace(sec.Content) != "" {
				parts = append(parts, head(sec.Content, 200))
			}
		}
		if len(parts) > 0 {
			return types.Answer{
				Text:          "Based on the available sections: " + strings.Join(parts, " "),
				Confidence:    0.4,
				SourceSection: sections[0].Title,
				PageNumber:    sections[0].PageStart,
				Type:          types.QuestionSummary,
			}
		}
	}

	return types.Answer{
		Text:       "This appears to be a research paper, but a summary could not be constructed from the extracted sections.",
		Confidence: 0.4,
		Type:       types.QuestionSummary,
	}
}

// generalStopWords never count toward keyword overlap.
var generalStopWords = map[string]bool{
	"the": true, "is": true, "at": true, "which": true, "on": true,
	"and": true, "a": true, "to": true, "are": true, "as": true,
	"was": true, "for": true, "with": true, "by": true,
}

const (
	// minParagraphLength filters noise paragraphs out of overlap search.
	minParagraphLength = 50

	// minOverlapScore is the fraction of question keywords the best
	// section must contain to count as a match.
	minOverlapScore = 0.1

	// shortQuestionTokens bounds the deictic-question fast path.
	shortQuestionTokens = 3
)

var wordRe = regexp.MustCompile(`\w+`)

// questionKeywords extracts the unique content words of a question:
// words longer than two characters, stop words removed.
func questionKeywords(question string) map[string]bool {
	keywords := make(map[string]bool)
	for _, w := range wordRe.FindAllString(strings.ToLower(question), -1) {
		if len(w) > 2 && !generalStopWords[w] {
			keywords[w] = true
		}
	}
	return keywords
}

// copyKeywords returns a shallow copy of a keyword set.
func copyKeywords(keywords map[string]bool) map[string]bool {
	out := make(map[string]bool, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}

// overlapScore is the fraction of keywords present in text.
func overlapScore(keywords map[string]bool, text string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	seen := make(map[string]bool)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if keywords[w] {
			seen[w] = true
		}
	}
	return float64(len(seen)) / float64(len(keywords))
}

// bestParagraph returns the paragraph of content with the highest keyword
// overlap, skipping near-empty paragraphs. Empty when nothing scores.
func bestParagraph(keywords map[string]bool, content string) string {
	best := ""
	bestScore := 0.0
	for _, para := range strings.Split(content, "\n\n") {
		if len(strings.TrimSpace(para)) < minParagraphLength {
			continue
		}
		if score := overlapScore(keywords, para); score > bestScore {
			bestScore = score
			best = para
		}
	}
	return best
}

// answerGeneral is the keyword-overlap path for questions with no
// dedicated extractor. It is a two-level greedy search: the best section
// by whole-section overlap is chosen first, then the best paragraph
// within it; confidence derives from the section-level score. Very short
// deictic questions ("what this") get an overview instead, since they
// carry no keywords worth matching.
func answerGeneral(question string, sections []types.Section) types.Answer {
	q := strings.ToLower(strings.TrimSpace(question))

	if len(strings.Fields(q)) <= shortQuestionTokens && containsAny(q, "what", "this", "that", "it") {
		return answerOverview(sections)
	}

	keywords := questionKeywords(q)

	if len(sections) == 0 {
		return types.Answer{
			Text:       "No sections were extracted from this paper, so the question cannot be answered.",
			Confidence: 0.1,
			Type:       types.QuestionGeneral,
		}
	}

	if len(keywords) > 0 {
		bestScore := 0.0
		var best *types.Section
		for i := range sections {
			if score := overlapScore(copyKeywords(keywords), sections[i].Content); score > bestScore {
				bestScore = score
				best = &sections[i]
			}
		}

		if best != nil && bestScore > minOverlapScore {
			text := bestParagraph(keywords, best.Content)
			if text == "" {
				text = best.Content
			}
			conf := bestScore * 0.8
			if conf > 0.8 {
				conf = 0.8
			}
			return types.Answer{
				Text:          head(text, 600),
				Confidence:    conf,
				Evidence:      head(text, 300),
				SourceSection: best.Title,
				PageNumber:    best.PageStart,
				Type:          types.QuestionGeneral,
			}
		}
	}

	for _, sec := range sections {
		if len(sec.Content) > 100 {
			return types.Answer{
				Text:          "Based on the available content: " + head(sec.Content, 500),
				Confidence:    0.4,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionGeneral,
			}
		}
	}

	return types.Answer{
		Text:       "The question could not be matched to any content in this paper.",
		Confidence: 0.2,
		Type:       types.QuestionGeneral,
	}
}

// answerOverview serves deictic questions from the most overview-like
// section available.
func answerOverview(sections []types.Section) types.Answer {
	if len(sections) == 0 {
		return types.Answer{
			Text:       "No sections were extracted from this paper, so the question cannot be answered.",
			Confidence: 0.1,
			Type:       types.QuestionGeneral,
		}
	}

	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		if strings.Contains(title, "title") || strings.Contains(title, "abstract") || strings.Contains(title, "summary") {
			return types.Answer{
				Text:          "This appears to be a research paper. " + head(sec.Content, 800),
				Confidence:    0.7,
				Evidence:      head(sec.Content, 300),
				SourceSection: sec.Title,
				PageNumber:    sec.PageStart,
				Type:          types.QuestionGeneral,
			}
		}
	}

	first := sections[0]
	return types.Answer{
		Text:          "This appears to be a research paper. " + head(first.Content, 800),
		Confidence:    0.7,
		Evidence:      head(first.Content, 300),
		SourceSection: first.Title,
		PageNumber:    first.PageStart,
		Type:          types.QuestionGeneral,
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
