// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// fakeExtractive is a scripted extractive-QA delegate.
type fakeExtractive struct {
	span   Span
	err    error
	gotCtx string
	called int
}

func (f *fakeExtractive) Answer(_ context.Context, _, contextText string) (Span, error) {
	f.called++
	f.gotCtx = contextText
	if f.err != nil {
		return Span{}, f.err
	}
	return f.span, nil
}

func newTestSynthesizer(model Extractive) *Synthesizer {
	return NewSynthesizer(model, NewContextBuilder(types.DefaultTaxonomy(), 0))
}

func threeSectionPaper() *types.ParsedPaper {
	return &types.ParsedPaper{
		Sections: []types.Section{
			{Title: "Abstract", Content: "We propose X."},
			{Title: "Methodology", Content: "We use technique Y."},
			{Title: "Results", Content: "Accuracy improved by 15%."},
		},
	}
}

func TestAnswerRuleModeMethodology(t *testing.T) {
	s := newTestSynthesizer(nil)

	got := s.Answer(context.Background(), "What is the methodology?", threeSectionPaper())
	if !strings.Contains(got.Text, "technique Y") {
		t.Errorf("Text = %q, want methodology content", got.Text)
	}
	if got.Confidence != 0.7 {
		t.Errorf("Confidence = %v, want 0.7", got.Confidence)
	}
}

func TestAnswerRuleModeSummary(t *testing.T) {
	s := newTestSynthesizer(nil)

	got := s.Answer(context.Background(), "Summarize the abstract", threeSectionPaper())
	if got.Text != "We propose X." {
		t.Errorf("Text = %q, want %q", got.Text, "We propose X.")
	}
	if got.SourceSection != "Abstract" {
		t.Errorf("SourceSection = %q, want %q", got.SourceSection, "Abstract")
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", got.Confidence)
	}
}

func TestAnswerDeicticResultsOnlyPaper(t *testing.T) {
	// No abstract or introduction: the context selection is empty, so the
	// rule path sees the paper's full section list and improvises.
	paper := &types.ParsedPaper{
		Sections: []types.Section{
			{Title: "Results", Content: strings.Repeat("measured outcomes across runs. ", 10)},
		},
	}

	s := newTestSynthesizer(nil)
	got := s.Answer(context.Background(), "what is this", paper)
	if got.Confidence != 0.4 {
		t.Errorf("Confidence = %v, want 0.4", got.Confidence)
	}
	if got.Type != types.QuestionSummary {
		t.Errorf("Type = %q, want summary", got.Type)
	}
}

func TestAnswerModelMode(t *testing.T) {
	model := &fakeExtractive{span: Span{Text: "technique Y", Score: 0.91, Start: 20, End: 31}}
	s := newTestSynthesizer(model)

	got := s.Answer(context.Background(), "What is the methodology?", threeSectionPaper())
	if got.Text != "technique Y" {
		t.Errorf("Text = %q, want model span", got.Text)
	}
	if got.Confidence != 0.91 {
		t.Errorf("Confidence = %v, want 0.91", got.Confidence)
	}
	if got.Evidence == "" {
		t.Error("Evidence is empty, want a window around the span")
	}
	if model.called != 1 {
		t.Errorf("delegate called %d times, want 1", model.called)
	}
	if !strings.Contains(model.gotCtx, "technique Y") {
		t.Errorf("delegate context = %q, want assembled section context", model.gotCtx)
	}
}

func TestAnswerModelFailureFallsBack(t *testing.T) {
	model := &fakeExtractive{err: errors.New("service down")}
	s := newTestSynthesizer(model)

	got := s.Answer(context.Background(), "What is the methodology?", threeSectionPaper())
	// Fallback runs the general rule path over the selected sections.
	if got.Text == "" {
		t.Fatal("fallback produced no answer")
	}
	if got.Type != types.QuestionGeneral {
		t.Errorf("Type = %q, want general after fallback", got.Type)
	}
}

func TestAnswerModelScoreClamped(t *testing.T) {
	model := &fakeExtractive{span: Span{Text: "x", Score: 3.5}}
	s := newTestSynthesizer(model)

	got := s.Answer(context.Background(), "What is the methodology?", threeSectionPaper())
	if got.Confidence != 1 {
		t.Errorf("Confidence = %v, want clamped to 1", got.Confidence)
	}
}

func TestAnswerInSection(t *testing.T) {
	s := newTestSynthesizer(nil)
	paper := threeSectionPaper()

	got := s.AnswerInSection(context.Background(), "what happened?", "results", paper)
	if got.Text != "Accuracy improved by 15%." {
		t.Errorf("Text = %q", got.Text)
	}
	if got.SourceSection != "Results" {
		t.Errorf("SourceSection = %q", got.SourceSection)
	}
	if got.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", got.Confidence)
	}
}

func TestAnswerInSectionMissing(t *testing.T) {
	s := newTestSynthesizer(nil)

	got := s.AnswerInSection(context.Background(), "anything", "appendix", threeSectionPaper())
	if !strings.Contains(got.Text, "not found in the paper") {
		t.Errorf("Text = %q, want section-not-found answer", got.Text)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	if got.SourceSection != "appendix" {
		t.Errorf("SourceSection = %q, want the requested name", got.SourceSection)
	}
}

func TestAnswerInSectionModelMode(t *testing.T) {
	model := &fakeExtractive{span: Span{Text: "15%", Score: 0.88, Start: 30, End: 33}}
	s := newTestSynthesizer(model)

	got := s.AnswerInSection(context.Background(), "by how much?", "results", threeSectionPaper())
	if got.Text != "15%" {
		t.Errorf("Text = %q, want model span", got.Text)
	}
	if !strings.Contains(model.gotCtx, "Results\n") {
		t.Errorf("delegate context = %q, want title-prefixed section", model.gotCtx)
	}
}
