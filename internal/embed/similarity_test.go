// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero norm", []float64{0, 0}, []float64{1, 2}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	query := []float64{1, 0}
	candidates := map[string][]float64{
		"exact":      {1, 0},
		"close":      {1, 0.2},
		"orthogonal": {0, 1},
		"nil-vector": nil,
	}

	got := Rank(query, candidates, 0)
	if len(got) != 3 {
		t.Fatalf("Rank() returned %d results, want 3 (nil vectors skipped)", len(got))
	}

	wantOrder := []string{"exact", "close", "orthogonal"}
	for i, want := range wantOrder {
		if got[i].PaperID != want {
			t.Errorf("rank %d = %q, want %q", i, got[i].PaperID, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Errorf("similarity not descending at %d: %v > %v", i, got[i].Similarity, got[i-1].Similarity)
		}
	}
}

func TestRankLimit(t *testing.T) {
	query := []float64{1, 0, 0}
	candidates := map[string][]float64{
		"a": {1, 0, 0},
		"b": {0.9, 0.1, 0},
		"c": {0.5, 0.5, 0},
	}

	got := Rank(query, candidates, 2)
	if len(got) != 2 {
		t.Fatalf("Rank() returned %d results, want 2", len(got))
	}
	if got[0].Similarity < got[1].Similarity {
		t.Errorf("results not in decreasing order: %v", got)
	}
}

func TestRankTieBreaksOnID(t *testing.T) {
	query := []float64{1, 0}
	candidates := map[string][]float64{
		"zeta":  {2, 0},
		"alpha": {5, 0},
	}

	// Both score exactly 1.0; the tie breaks on paper ID ascending.
	got := Rank(query, candidates, 0)
	if got[0].PaperID != "alpha" || got[1].PaperID != "zeta" {
		t.Errorf("tie order = %q, %q; want alpha, zeta", got[0].PaperID, got[1].PaperID)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank([]float64{1}, nil, 5); len(got) != 0 {
		t.Errorf("Rank() = %v, want empty", got)
	}
}
