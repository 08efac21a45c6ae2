// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"testing"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     types.QuestionType
	}{
		// Generic phrasings resolve before keyword rules.
		{"deictic what is this", "what is this", types.QuestionSummary},
		{"deictic embedded", "so, what is this paper", types.QuestionSummary},
		{"explain this", "explain this", types.QuestionSummary},

		// Ordered keyword rules.
		{"main contribution", "what is the main contribution?", types.QuestionContribution},
		{"novelty", "what is novel about this work?", types.QuestionContribution},
		{"methodology", "what methodology do they use?", types.QuestionMethodology},
		{"how implemented", "how did they implement the system?", types.QuestionMethodology},
		{"results", "what results did they report?", types.QuestionResults},
		{"accuracy", "what accuracy does it reach?", types.QuestionResults},
		{"limitations", "what are the limitations?", types.QuestionLimitations},
		{"drawbacks", "any drawbacks to this design?", types.QuestionLimitations},
		{"summarize", "summarize the abstract", types.QuestionSummary},
		{"dataset", "which dataset did they train on?", types.QuestionDataset},
		{"comparison", "how does it compare to baselines?", types.QuestionComparison},

		// Rule order: contribution patterns run before methodology, so a
		// question matching both types as contribution.
		{"contribution beats methodology", "what is the novel approach?", types.QuestionContribution},

		// Fallbacks.
		{"short what question", "what about results?", types.QuestionResults},
		{"short what fallback", "what is covered?", types.QuestionSummary},
		{"how hint", "how was it done exactly, over many many words here?", types.QuestionMethodology},
		{"no signal", "tell me about neurons", types.QuestionGeneral},

		// Case and whitespace insensitivity.
		{"uppercase", "  WHAT IS THE MAIN CONTRIBUTION?  ", types.QuestionContribution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.question)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	questions := []string{
		"what is this",
		"what is the main contribution?",
		"how does it compare to baselines?",
		"gibberish question",
	}
	for _, q := range questions {
		first := Classify(q)
		for i := 0; i < 5; i++ {
			if got := Classify(q); got != first {
				t.Errorf("Classify(%q) unstable: %q then %q", q, first, got)
			}
		}
	}
}
