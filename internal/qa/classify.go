// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package qa answers free-form questions about structured papers through
// a classification, section-selection, context-assembly, and
// answer-synthesis pipeline.
package qa

import (
	"regexp"
	"strings"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// classificationRule is one ordered pattern for question typing. Rules
// are evaluated in slice order across all types; the first match wins.
// Reordering changes observable classification outcomes, so the list is
// data, not derived logic.
type classificationRule struct {
	qtype types.QuestionType
	re    *regexp.Regexp
}

// classificationRules are precision-oriented patterns in fixed type
// order: contribution, methodology, results, limitations, summary,
// dataset, comparison. Questions are lowercased before matching.
var classificationRules = []classificationRule{
	{types.QuestionContribution, regexp.MustCompile(`(main|key|primary|novel|new)\s*(contribution|novelty)`)},
	{types.QuestionContribution, regexp.MustCompile(`what.*?(novel|new|contribution|significance)`)},
	{types.QuestionContribution, regexp.MustCompile(`(significance|importance).*?(work|research|paper)`)},

	{types.QuestionMethodology, regexp.MustCompile(`(method|approach|algorithm|technique|procedure)`)},
	{types.QuestionMethodology, regexp.MustCompile(`how.*?(implement|design|build|create|develop)`)},
	{types.QuestionMethodology, regexp.MustCompile(`(experimental|evaluation)\s*(setup|design|protocol)`)},

	{types.QuestionResults, regexp.MustCompile(`(result|finding|outcome|performance|accuracy)`)},
	{types.QuestionResults, regexp.MustCompile(`what.*?(achieve|obtain|find|discover)`)},
	{types.QuestionResults, regexp.MustCompile(`(evaluation|experiment).*?(result|outcome)`)},

	{types.QuestionLimitations, regexp.MustCompile(`(limitation|weakness|constraint|problem)`)},
	{types.QuestionLimitations, regexp.MustCompile(`what.*?(limit|constrain|prevent|issue)`)},
	{types.QuestionLimitations, regexp.MustCompile(`(challenge|difficulty|drawback)`)},

	{types.QuestionSummary, regexp.MustCompile(`(summarize|summary|overview|abstract)`)},
	{types.QuestionSummary, regexp.MustCompile(`what.*?(about|discuss|cover)`)},
	{types.QuestionSummary, regexp.MustCompile(`(explain|describe).*?(paper|work|research)`)},

	{types.QuestionDataset, regexp.MustCompile(`(dataset|data|corpus|benchmark)`)},
	{types.QuestionDataset, regexp.MustCompile(`what.*?(data|dataset|corpus)`)},
	{types.QuestionDataset, regexp.MustCompile(`(evaluation|experiment).*?(data|dataset)`)},

	{types.QuestionComparison, regexp.MustCompile(`(compare|comparison|versus|vs|differ)`)},
	{types.QuestionComparison, regexp.MustCompile(`how.*?(different|similar|compare)`)},
	{types.QuestionComparison, regexp.MustCompile(`(baseline|previous|prior).*?(work|method)`)},
}

// genericPhrasings are very short question forms that want an overview.
// They are resolved to summary before the keyword rules run, so trivial
// questions are never mis-typed by an incidental keyword.
var genericPhrasings = []string{
	"what is this",
	"what is that",
	"what is it",
	"describe this",
	"tell me about this",
	"what does this say",
	"what is the content",
	"what is in this",
	"explain this",
	"summarize this",
}

// methodologyHints trigger the methodology fallback when no primary rule
// matched.
var methodologyHints = []string{"how", "method", "approach", "technique"}

// Classify maps a raw question to its question type. The precedence is
// deliberate: generic phrasings first, then the ordered keyword rules,
// then fallback heuristics for common phrasings the precision-oriented
// patterns under-match. Classification is a pure function of the
// question string.
func Classify(question string) types.QuestionType {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, phrase := range genericPhrasings {
		if strings.Contains(q, phrase) {
			return types.QuestionSummary
		}
	}

	for _, rule := range classificationRules {
		if rule.re.MatchString(q) {
			return rule.qtype
		}
	}

	if strings.Contains(q, "what") && len(strings.Fields(q)) <= 5 {
		return types.QuestionSummary
	}
	for _, hint := range methodologyHints {
		if strings.Contains(q, hint) {
			return types.QuestionMethodology
		}
	}

	return types.QuestionGeneral
}
