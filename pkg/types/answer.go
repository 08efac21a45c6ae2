// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// QuestionType classifies a research question so the right sections can
// be consulted when answering it.
type QuestionType string

const (
	QuestionContribution QuestionType = "contribution"
	QuestionMethodology  QuestionType = "methodology"
	QuestionResults      QuestionType = "results"
	QuestionLimitations  QuestionType = "limitations"
	QuestionSummary      QuestionType = "summary"
	QuestionDataset      QuestionType = "dataset"
	QuestionComparison   QuestionType = "comparison"
	QuestionGeneral      QuestionType = "general"
)

// QuestionTypes lists every question type in classification order.
var QuestionTypes = []QuestionType{
	QuestionContribution,
	QuestionMethodology,
	QuestionResults,
	QuestionLimitations,
	QuestionSummary,
	QuestionDataset,
	QuestionComparison,
	QuestionGeneral,
}

// Answer is a single response to a research question, with the evidence
// that supports it. Answers are produced fresh per query and never
// mutated after construction. Text is always either a span copied from
// source text or a concatenation of matched passages.
type Answer struct {
	// Text is the answer body.
	Text string `json:"answer" yaml:"answer"`

	// Confidence is a finite value in [0, 1]. Low confidence is the
	// primary "this might not be right" signal, not an error code.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Evidence is the source excerpt the answer was drawn from.
	Evidence string `json:"evidence" yaml:"evidence"`

	// SourceSection names the section the answer came from, when one can
	// be clearly attributed.
	SourceSection string `json:"source_section,omitempty" yaml:"source_section,omitempty"`

	// PageNumber locates the source section's first page, when known.
	PageNumber int `json:"page_number,omitempty" yaml:"page_number,omitempty"`

	// Context is a free-form note about what the answer was built from.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Type tags which extraction strategy produced the answer.
	Type QuestionType `json:"answer_type,omitempty" yaml:"answer_type,omitempty"`
}
