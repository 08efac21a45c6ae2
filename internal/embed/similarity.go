// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"math"
	"sort"
)

// Scored pairs a paper ID with its similarity to a query vector.
type Scored struct {
	PaperID    string
	Similarity float64
}

// Cosine returns the cosine similarity of two vectors. Mismatched
// lengths and zero-norm vectors score 0 rather than erroring: a paper
// with no usable vector simply never ranks.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Rank scores every candidate vector against the query and returns the
// top limit results in descending similarity order. Ties break on paper
// ID ascending so rankings are deterministic. Candidates with a nil
// vector are skipped.
func Rank(query []float64, candidates map[string][]float64, limit int) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for id, vec := range candidates {
		if vec == nil {
			continue
		}
		scored = append(scored, Scored{PaperID: id, Similarity: Cosine(query, vec)})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].PaperID < scored[j].PaperID
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
