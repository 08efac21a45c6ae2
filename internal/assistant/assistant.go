// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant orchestrates the paper pipeline: structuring uploads,
// answering questions with evidence, summarizing, and ranking the corpus
// by similarity to a question.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manoj1906/AI-research-assistant/internal/embed"
	"github.com/manoj1906/AI-research-assistant/internal/paper"
	"github.com/manoj1906/AI-research-assistant/internal/qa"
	"github.com/manoj1906/AI-research-assistant/internal/store"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// ErrModelUnavailable reports that the embedding service could not be
// reached for an operation that cannot proceed without it.
var ErrModelUnavailable = errors.New("embedding service unavailable")

// Fixed corpus-wide answers. These are answers, not errors: a question
// against an empty or unsearchable corpus still gets a response the
// caller can display.
const (
	msgNoPapers         = "No papers available to search."
	msgNoRelevantPapers = "No relevant papers found for this question."
)

// Assistant wires the parser, synthesizer, embedder, and store together.
type Assistant struct {
	parser   *paper.Parser
	synth    *qa.Synthesizer
	embedder embed.Embedder // nil disables the similarity index
	store    *store.Store
	warnings io.Writer
}

// New assembles an assistant. embedder may be nil, in which case uploads
// are stored without vectors and corpus search degrades to its fixed
// answers.
func New(parser *paper.Parser, synth *qa.Synthesizer, embedder embed.Embedder, st *store.Store, warnings io.Writer) *Assistant {
	if warnings == nil {
		warnings = io.Discard
	}
	return &Assistant{
		parser:   parser,
		synth:    synth,
		embedder: embedder,
		store:    st,
		warnings: warnings,
	}
}

// Upload parses the document at path, embeds it, stores the result, and
// returns the paper's ID. An empty id gets a generated UUID; uploading
// under an existing id replaces that paper and its vectors wholesale. A
// parse failure rejects the upload; an embedding failure does not, it
// just leaves the paper out of the similarity index.
func (a *Assistant) Upload(ctx context.Context, path, id string) (string, error) {
	parsed, err := a.parser.Parse(ctx, path)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	if id == "" {
		id = uuid.NewString()
	}

	vectors := a.embedPaper(ctx, parsed)
	if err := a.store.Put(ctx, id, parsed, vectors, time.Now()); err != nil {
		return "", fmt.Errorf("storing paper: %w", err)
	}
	return id, nil
}

// embedPaper builds the paper's vector set. Any embedding failure is
// reported as a warning and yields nil.
func (a *Assistant) embedPaper(ctx context.Context, parsed *types.ParsedPaper) *types.PaperVectors {
	if a.embedder == nil {
		return nil
	}

	texts := []string{parsed.Metadata.Title, parsed.Metadata.Abstract}
	for _, sec := range parsed.Sections {
		texts = append(texts, sec.Title+"\n"+sec.Content)
	}

	vecs, err := a.embedder.Embed(ctx, texts)
	if err != nil {
		fmt.Fprintf(a.warnings, "warning: embedding paper failed: %v\n", err)
		return nil
	}

	return &types.PaperVectors{
		Title:    vecs[0],
		Abstract: vecs[1],
		Sections: vecs[2:],
	}
}

// Ask answers a question about one stored paper. When section is
// non-empty the answer is scoped to the first section whose title
// contains it.
func (a *Assistant) Ask(ctx context.Context, paperID, question, section string) (types.Answer, error) {
	parsed, err := a.store.Get(paperID)
	if err != nil {
		return types.Answer{}, err
	}

	if section != "" {
		return a.synth.AnswerInSection(ctx, question, section, parsed), nil
	}
	return a.synth.Answer(ctx, question, parsed), nil
}

// AskAll answers a question against the whole corpus: the question is
// embedded, the most similar paper is chosen by abstract similarity, and
// the question is answered against that paper. The returned paper ID
// names the chosen paper; it is empty when the fixed corpus answers
// apply.
func (a *Assistant) AskAll(ctx context.Context, question string) (types.Answer, string, error) {
	if a.store.Len() == 0 {
		return types.Answer{Text: msgNoPapers, Confidence: 0}, "", nil
	}

	ranked, err := a.rank(ctx, question, 1)
	if err != nil || len(ranked) == 0 {
		return types.Answer{Text: msgNoRelevantPapers, Confidence: 0}, "", nil
	}

	best := ranked[0].PaperID
	answer, err := a.Ask(ctx, best, question, "")
	if err != nil {
		return types.Answer{}, "", err
	}
	if parsed, err := a.store.Get(best); err == nil {
		answer.Context = "Based on analysis of: " + parsed.Metadata.Title
	}
	return answer, best, nil
}

// rank embeds the question and scores it against every paper's abstract
// vector.
func (a *Assistant) rank(ctx context.Context, question string, limit int) ([]embed.Scored, error) {
	if a.embedder == nil {
		return nil, ErrModelUnavailable
	}
	vecs, err := a.embedder.Embed(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return embed.Rank(vecs[0], a.store.AbstractVectors(), limit), nil
}

// Search ranks the corpus by similarity to the question and returns up
// to limit paper summaries in descending similarity order. Unlike
// AskAll, an unreachable embedding service is an error here: a ranking
// cannot be degraded, only a missing one reported.
func (a *Assistant) Search(ctx context.Context, question string, limit int) ([]types.PaperSummary, error) {
	ranked, err := a.rank(ctx, question, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.PaperSummary, 0, len(ranked))
	for _, r := range ranked {
		summary, err := a.summary(r.PaperID)
		if err != nil {
			continue
		}
		summary.Similarity = r.Similarity
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// summarySectionCount and summaryExcerptLength shape the full-paper
// summary: the first few substantial sections, excerpted.
const (
	summarySectionCount  = 3
	summaryExcerptLength = 200
)

// Summarize builds a full-paper summary from the stored metadata and the
// first substantial sections. A non-empty section name summarizes just
// that section through the answer synthesizer instead.
func (a *Assistant) Summarize(ctx context.Context, paperID, section string) (string, error) {
	parsed, err := a.store.Get(paperID)
	if err != nil {
		return "", err
	}

	if section != "" {
		question := fmt.Sprintf("Summarize the %s section", section)
		answer := a.synth.AnswerInSection(ctx, question, section, parsed)
		return answer.Text, nil
	}

	var parts []string
	if parsed.Metadata.Title != "" {
		parts = append(parts, "Title: "+parsed.Metadata.Title)
	}
	if len(parsed.Metadata.Authors) > 0 {
		parts = append(parts, "Authors: "+strings.Join(parsed.Metadata.Authors, ", "))
	}
	if parsed.Metadata.Abstract != "" {
		parts = append(parts, "Abstract: "+parsed.Metadata.Abstract)
	}

	count := 0
	for _, sec := range parsed.Sections {
		if count == summarySectionCount {
			break
		}
		if len(sec.Content) <= 100 {
			continue
		}
		excerpt := sec.Content
		if len(excerpt) > summaryExcerptLength {
			excerpt = excerpt[:summaryExcerptLength] + "..."
		}
		parts = append(parts, sec.Title+": "+excerpt)
		count++
	}

	return strings.Join(parts, "\n\n"), nil
}

// ContributionAnalysis is the answer battery for a contribution analysis.
type ContributionAnalysis struct {
	MainContributions types.Answer `json:"main_contributions"`
	Novelty           types.Answer `json:"novelty"`
	Significance      types.Answer `json:"significance"`
}

// Confidences maps each analyzed aspect to its answer confidence.
func (c ContributionAnalysis) Confidences() map[string]float64 {
	return map[string]float64{
		"contributions": c.MainContributions.Confidence,
		"novelty":       c.Novelty.Confidence,
		"significance":  c.Significance.Confidence,
	}
}

// AnalyzeContribution answers the contribution question battery for one
// paper.
func (a *Assistant) AnalyzeContribution(ctx context.Context, paperID string) (ContributionAnalysis, error) {
	var out ContributionAnalysis
	var err error

	if out.MainContributions, err = a.Ask(ctx, paperID, "What are the main contributions?", ""); err != nil {
		return ContributionAnalysis{}, err
	}
	if out.Novelty, err = a.Ask(ctx, paperID, "What is novel about this work?", ""); err != nil {
		return ContributionAnalysis{}, err
	}
	if out.Significance, err = a.Ask(ctx, paperID, "What is the significance of this research?", ""); err != nil {
		return ContributionAnalysis{}, err
	}
	return out, nil
}

// MethodologyAnalysis is the answer battery for a methodology analysis.
type MethodologyAnalysis struct {
	Methodology types.Answer `json:"methodology"`
	Approach    types.Answer `json:"approach"`
	Datasets    types.Answer `json:"datasets"`
}

// Confidences maps each analyzed aspect to its answer confidence.
func (m MethodologyAnalysis) Confidences() map[string]float64 {
	return map[string]float64{
		"methodology": m.Methodology.Confidence,
		"approach":    m.Approach.Confidence,
		"datasets":    m.Datasets.Confidence,
	}
}

// AnalyzeMethodology answers the methodology question battery for one
// paper.
func (a *Assistant) AnalyzeMethodology(ctx context.Context, paperID string) (MethodologyAnalysis, error) {
	var out MethodologyAnalysis
	var err error

	if out.Methodology, err = a.Ask(ctx, paperID, "What is the methodology?", ""); err != nil {
		return MethodologyAnalysis{}, err
	}
	if out.Approach, err = a.Ask(ctx, paperID, "What approach was used?", ""); err != nil {
		return MethodologyAnalysis{}, err
	}
	if out.Datasets, err = a.Ask(ctx, paperID, "What datasets were used?", ""); err != nil {
		return MethodologyAnalysis{}, err
	}
	return out, nil
}

// PaperComparison is one paper's side of a comparison.
type PaperComparison struct {
	PaperID string       `json:"paper_id"`
	Title   string       `json:"title"`
	Answer  types.Answer `json:"answer"`
}

// Comparison compares two or more papers on one aspect.
type Comparison struct {
	Aspect  string            `json:"aspect"`
	Papers  []PaperComparison `json:"papers"`
	Summary string            `json:"summary"`
}

// comparisonQuestion maps a comparison aspect to the question asked of
// every paper.
func comparisonQuestion(aspect string) string {
	switch aspect {
	case "methodology":
		return "What is the methodology?"
	case "contributions":
		return "What are the main contributions?"
	case "results":
		return "What are the results?"
	default:
		return fmt.Sprintf("What about %s?", aspect)
	}
}

// Compare asks the same aspect question against every listed paper so
// their approaches can be read side by side. At least two papers are
// required; an empty aspect compares methodology.
func (a *Assistant) Compare(ctx context.Context, paperIDs []string, aspect string) (Comparison, error) {
	if len(paperIDs) < 2 {
		return Comparison{}, errors.New("need at least 2 papers to compare")
	}
	if aspect == "" {
		aspect = "methodology"
	}
	question := comparisonQuestion(aspect)

	cmp := Comparison{Aspect: aspect}
	for _, id := range paperIDs {
		parsed, err := a.store.Get(id)
		if err != nil {
			return Comparison{}, err
		}
		answer, err := a.Ask(ctx, id, question, "")
		if err != nil {
			return Comparison{}, err
		}
		cmp.Papers = append(cmp.Papers, PaperComparison{
			PaperID: id,
			Title:   parsed.Metadata.Title,
			Answer:  answer,
		})
	}

	cmp.Summary = comparisonSummary(cmp.Papers, aspect)
	return cmp, nil
}

// comparisonSummary renders one bullet per compared paper.
func comparisonSummary(papers []PaperComparison, aspect string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison of %d papers on %s:\n\n", len(papers), aspect)
	for _, p := range papers {
		fmt.Fprintf(&b, "• %s: %s\n", excerpt(p.Title, 60), excerpt(p.Answer.Text, 100))
	}
	return b.String()
}

// excerpt truncates s to at most n bytes, marking the cut.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Info returns the paper's summary row plus its structural layout:
// section spans and the figure/table/reference counts of the stored
// record.
func (a *Assistant) Info(paperID string) (types.PaperInfo, error) {
	parsed, err := a.store.Get(paperID)
	if err != nil {
		return types.PaperInfo{}, err
	}
	summary, err := a.summary(paperID)
	if err != nil {
		return types.PaperInfo{}, err
	}

	info := types.PaperInfo{
		PaperSummary:   summary,
		Abstract:       parsed.Metadata.Abstract,
		Keywords:       parsed.Metadata.Keywords,
		Venue:          parsed.Metadata.Venue,
		FigureCount:    len(parsed.Figures),
		TableCount:     len(parsed.Tables),
		ReferenceCount: len(parsed.References),
	}
	for _, sec := range parsed.Sections {
		info.Sections = append(info.Sections, types.SectionSpan{
			Title:     sec.Title,
			PageStart: sec.PageStart,
			PageEnd:   sec.PageEnd,
		})
	}
	return info, nil
}

// summary builds the stored paper's summary row.
func (a *Assistant) summary(paperID string) (types.PaperSummary, error) {
	parsed, err := a.store.Get(paperID)
	if err != nil {
		return types.PaperSummary{}, err
	}
	uploadedAt, err := a.store.UploadedAt(paperID)
	if err != nil {
		return types.PaperSummary{}, err
	}

	return types.PaperSummary{
		PaperID:    paperID,
		Title:      parsed.Metadata.Title,
		Authors:    parsed.Metadata.Authors,
		Year:       parsed.Metadata.Year,
		PageCount:  parsed.PageCount,
		UploadedAt: uploadedAt,
	}, nil
}

// List returns a summary row for every stored paper, ordered by ID.
func (a *Assistant) List() []types.PaperSummary {
	ids := a.store.List()
	summaries := make([]types.PaperSummary, 0, len(ids))
	for _, id := range ids {
		if summary, err := a.summary(id); err == nil {
			summaries = append(summaries, summary)
		}
	}
	return summaries
}

// Get returns the full parsed paper.
func (a *Assistant) Get(paperID string) (*types.ParsedPaper, error) {
	return a.store.Get(paperID)
}

// Delete removes a paper from the store and the similarity index.
func (a *Assistant) Delete(ctx context.Context, paperID string) error {
	return a.store.Delete(ctx, paperID)
}
