package types

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// SectionPattern binds one canonical section type to the header keywords
// that identify it. Patterns are evaluated in slice order; the first type
// whose keywords match a header line wins, so the order here is a fixed,
// deterministic priority.
type SectionPattern struct {
	// Type is the canonical section type name (e.g. "methodology").
	Type string `json:"type" yaml:"type"`

	// Keywords are matched, case-insensitively, against whole header lines.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// QuestionPriority binds a question type to the ordered list of section
// title keywords to consult when answering it. Earlier keywords rank a
// matching section higher.
type QuestionPriority struct {
	Question QuestionType `json:"question" yaml:"question"`
	Sections []string     `json:"sections" yaml:"sections"`
}

// TaxonomyConfig is the shared section/question taxonomy. It is injected
// configuration: the segmenter uses SectionPatterns to label sections and
// the context builder uses QuestionPriorities to rank them per question
// type. Both lists are order-sensitive.
type TaxonomyConfig struct {
	SectionPatterns    []SectionPattern   `json:"section_patterns" yaml:"section_patterns"`
	QuestionPriorities []QuestionPriority `json:"question_priorities" yaml:"question_priorities"`
}

// PrioritiesFor returns the ordered section keywords for a question type,
// defaulting to the abstract when the type has no entry.
func (t TaxonomyConfig) PrioritiesFor(q QuestionType) []string {
	for _, p := range t.QuestionPriorities {
		if p.Question == q {
			return p.Sections
		}
	}
	return []string{"abstract"}
}

// DefaultTaxonomy returns the built-in section and question taxonomy.
func DefaultTaxonomy() TaxonomyConfig {
	return TaxonomyConfig{
		SectionPatterns: []SectionPattern{
			{Type: "abstract", Keywords: []string{"abstract", "summary"}},
			{Type: "introduction", Keywords: []string{"introduction", "intro"}},
			{Type: "related_work", Keywords: []string{"related work", "background", "literature review"}},
			{Type: "methodology", Keywords: []string{"methodology", "methods", "approach", "model"}},
			{Type: "experiments", Keywords: []string{"experiments", "evaluation", "results"}},
			{Type: "discussion", Keywords: []string{"discussion", "analysis"}},
			{Type: "conclusion", Keywords: []string{"conclusion", "conclusions", "summary"}},
			{Type: "references", Keywords: []string{"references", "bibliography"}},
		},
		QuestionPriorities: []QuestionPriority{
			{Question: QuestionContribution, Sections: []string{"abstract", "introduction", "conclusion"}},
			{Question: QuestionMethodology, Sections: []string{"methodology", "methods", "approach", "model"}},
			{Question: QuestionResults, Sections: []string{"results", "experiments", "evaluation"}},
			{Question: QuestionLimitations, Sections: []string{"discussion", "limitations", "conclusion"}},
			{Question: QuestionSummary, Sections: []string{"abstract", "conclusion"}},
			{Question: QuestionDataset, Sections: []string{"experiments", "evaluation", "methodology"}},
			{Question: QuestionComparison, Sections: []string{"related work", "background", "experiments"}},
			{Question: QuestionGeneral, Sections: []string{"abstract"}},
		},
	}
}

// LoadTaxonomy reads a TaxonomyConfig from a YAML file. The file must
// define at least one section pattern; question priorities may be
// omitted, in which case every question type falls back to the abstract.
func LoadTaxonomy(path string) (TaxonomyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TaxonomyConfig{}, fmt.Errorf("reading taxonomy: %w", err)
	}

	var tax TaxonomyConfig
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return TaxonomyConfig{}, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}
	if len(tax.SectionPatterns) == 0 {
		return TaxonomyConfig{}, fmt.Errorf("taxonomy %s defines no section patterns", path)
	}
	return tax, nil
}

// QAConfig holds settings for the external extractive-QA service.
type QAConfig struct {
	// Endpoint is the question-answering inference URL. Empty disables
	// model mode; answers are then produced by rule-based extraction.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey authenticates against the inference endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// EmbeddingsConfig holds settings for the external embedding service.
type EmbeddingsConfig struct {
	// Endpoint is the base URL of an OpenAI-compatible embeddings API.
	// Empty disables similarity search.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey authenticates against the embeddings endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the embedding model identifier.
	Model string `json:"model" yaml:"model"`

	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AssistantConfig groups all settings for the assistant core.
type AssistantConfig struct {
	// Taxonomy is the section/question taxonomy. Zero value means
	// DefaultTaxonomy.
	Taxonomy TaxonomyConfig `json:"taxonomy" yaml:"taxonomy"`

	// MaxContextLength bounds the context assembled for the answer
	// synthesizer, in bytes (default 2000).
	MaxContextLength int `json:"max_context_length" yaml:"max_context_length"`

	// DBPath is the SQLite database file for the paper store.
	DBPath string `json:"db_path" yaml:"db_path"`

	QA         QAConfig         `json:"qa" yaml:"qa"`
	Embeddings EmbeddingsConfig `json:"embeddings" yaml:"embeddings"`
}

// DefaultMaxContextLength is used when AssistantConfig.MaxContextLength
// is unset.
const DefaultMaxContextLength = 2000
