// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// Span is the raw output of an extractive-QA capability: an answer span
// with its score and character offsets into the supplied context.
type Span struct {
	Text  string
	Score float64
	Start int
	End   int
}

// Extractive is the external extractive-QA capability. Implementations
// may fail; a failure is recovered by rule-based synthesis and never
// surfaced to the caller.
type Extractive interface {
	Answer(ctx context.Context, question, context string) (Span, error)
}

// evidenceWindow pads the model's answer span on both sides when cutting
// the evidence excerpt out of the context.
const evidenceWindow = 100

// contextNoteLimit bounds the free-form context note attached to
// model-mode answers.
const contextNoteLimit = 500

// Synthesizer produces evidence-backed answers for one paper. It holds
// no state across calls: every invocation is a pure function of the
// question and the paper.
type Synthesizer struct {
	model   Extractive // nil means rule mode only
	builder *ContextBuilder
}

// NewSynthesizer returns a synthesizer that delegates to model when it
// is non-nil and falls back to rule-based extraction otherwise.
func NewSynthesizer(model Extractive, builder *ContextBuilder) *Synthesizer {
	return &Synthesizer{model: model, builder: builder}
}

// Answer classifies the question, assembles a bounded context from the
// paper's most relevant sections, and synthesizes an answer. Model mode
// is used when an extractive-QA capability is configured and the context
// is non-empty; any delegate failure degrades to rule mode with question
// type general rather than failing the request.
func (s *Synthesizer) Answer(ctx context.Context, question string, paper *types.ParsedPaper) types.Answer {
	qtype := Classify(question)
	contextText, sections := s.builder.Build(qtype, paper)
	if len(sections) == 0 {
		sections = paper.Sections
	}

	if s.model != nil && contextText != "" {
		answer, err := s.modelAnswer(ctx, question, contextText)
		if err == nil {
			answer.Type = qtype
			if len(sections) > 0 {
				answer.SourceSection = sections[0].Title
				answer.PageNumber = sections[0].PageStart
			}
			return answer
		}
		return s.ruleAnswer(question, types.QuestionGeneral, sections)
	}

	return s.ruleAnswer(question, qtype, sections)
}

// AnswerInSection answers within one named section. A missing section is
// not an error: it yields a dedicated zero-confidence answer.
func (s *Synthesizer) AnswerInSection(ctx context.Context, question, sectionName string, paper *types.ParsedPaper) types.Answer {
	qtype := Classify(question)
	var target *types.Section
	want := strings.ToLower(sectionName)
	for i := range paper.Sections {
		if strings.Contains(strings.ToLower(paper.Sections[i].Title), want) {
			target = &paper.Sections[i]
			break
		}
	}

	if target == nil {
		return types.Answer{
			Text:          fmt.Sprintf("Section %q not found in the paper.", sectionName),
			Confidence:    0.0,
			SourceSection: sectionName,
			Type:          qtype,
		}
	}

	contextText := target.Title + "\n" + target.Content

	if s.model != nil {
		if span, err := s.model.Answer(ctx, question, contextText); err == nil {
			return types.Answer{
				Text:          span.Text,
				Confidence:    clampConfidence(span.Score),
				Evidence:      window(contextText, span.Start, span.End, 50),
				SourceSection: target.Title,
				PageNumber:    target.PageStart,
				Type:          qtype,
			}
		}
	}

	return types.Answer{
		Text:          head(target.Content, 500),
		Confidence:    0.6,
		Evidence:      head(target.Content, 300),
		SourceSection: target.Title,
		PageNumber:    target.PageStart,
		Type:          qtype,
	}
}

// modelAnswer delegates to the extractive-QA capability. The evidence is
// the offset window around the returned span, clipped to the context.
func (s *Synthesizer) modelAnswer(ctx context.Context, question, contextText string) (types.Answer, error) {
	span, err := s.model.Answer(ctx, question, contextText)
	if err != nil {
		return types.Answer{}, err
	}

	note := contextText
	if len(note) > contextNoteLimit {
		note = note[:contextNoteLimit] + ellipsis
	}

	return types.Answer{
		Text:       span.Text,
		Confidence: clampConfidence(span.Score),
		Evidence:   window(contextText, span.Start, span.End, evidenceWindow),
		Context:    note,
	}, nil
}

// ruleAnswer dispatches to the per-type rule extractor. The dispatch
// table is keyed by question type and covers every type; unknown values
// take the general path.
func (s *Synthesizer) ruleAnswer(question string, qtype types.QuestionType, sections []types.Section) types.Answer {
	extract, ok := ruleExtractors[qtype]
	if !ok {
		extract = answerGeneral
	}
	return extract(question, sections)
}

// window cuts [start-pad, end+pad) out of text, clipped to its bounds.
func window(text string, start, end, pad int) string {
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(text) {
		hi = len(text)
	}
	if lo >= hi {
		return ""
	}
	return text[lo:hi]
}

// head returns the first n bytes of s, trimmed.
func head(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.TrimSpace(s)
}

// clampConfidence forces a score into [0, 1].
func clampConfidence(c float64) float64 {
	switch {
	case c < 0 || c != c: // negative or NaN
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
