// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"testing"

	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

func TestBuildFigures(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{
			{
				Text:   "Figure 1: Model architecture overview.\nbody text",
				Images: []types.BoundingBox{{X0: 10, Y0: 20, X1: 110, Y1: 220}},
			},
			{
				Text:   "no caption on this page",
				Images: []types.BoundingBox{{X0: 1, Y0: 1, X1: 2, Y1: 2}},
			},
		},
	}

	figures := buildFigures(doc, firstMatch{})
	if len(figures) != 2 {
		t.Fatalf("buildFigures() returned %d figures, want 2", len(figures))
	}

	if figures[0].Caption != "Figure 1: Model architecture overview." {
		t.Errorf("Caption = %q", figures[0].Caption)
	}
	if figures[0].FigureNumber != "1" {
		t.Errorf("FigureNumber = %q, want %q", figures[0].FigureNumber, "1")
	}
	if figures[0].PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", figures[0].PageNumber)
	}
	if figures[0].BBox != (types.BoundingBox{X0: 10, Y0: 20, X1: 110, Y1: 220}) {
		t.Errorf("BBox = %+v", figures[0].BBox)
	}

	// Captionless page falls back to the placeholder.
	if figures[1].Caption != "Figure from page 2" {
		t.Errorf("Caption = %q, want placeholder", figures[1].Caption)
	}
	if figures[1].FigureNumber != "" {
		t.Errorf("FigureNumber = %q, want empty", figures[1].FigureNumber)
	}
}

func TestBuildFiguresAbbreviatedCaption(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{{
			Text:   "Fig. 3. Ablation results.",
			Images: []types.BoundingBox{{}},
		}},
	}

	figures := buildFigures(doc, firstMatch{})
	if len(figures) != 1 {
		t.Fatalf("buildFigures() returned %d figures, want 1", len(figures))
	}
	if figures[0].Caption != "Fig. 3. Ablation results." {
		t.Errorf("Caption = %q", figures[0].Caption)
	}
}

func TestBuildFiguresNoImages(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{{Text: "Figure 1: caption with no image region"}},
	}
	if figures := buildFigures(doc, firstMatch{}); len(figures) != 0 {
		t.Errorf("buildFigures() = %+v, want none", figures)
	}
}

func TestBuildTables(t *testing.T) {
	doc := &source.Document{
		Pages: []source.Page{{
			Text: "Table 2: Accuracy by model size.",
			Tables: []source.TableRegion{{
				BBox: types.BoundingBox{X0: 5, Y0: 5, X1: 50, Y1: 80},
				Rows: [][]string{
					{"model", "accuracy"},
					{"small", "0.81"},
					{"large", "0.93"},
				},
			}},
		}},
	}

	tables := buildTables(doc, firstMatch{})
	if len(tables) != 1 {
		t.Fatalf("buildTables() returned %d tables, want 1", len(tables))
	}

	tab := tables[0]
	if tab.Caption != "Table 2: Accuracy by model size." {
		t.Errorf("Caption = %q", tab.Caption)
	}
	if tab.TableNumber != "2" {
		t.Errorf("TableNumber = %q, want %q", tab.TableNumber, "2")
	}
	wantContent := "model | accuracy\nsmall | 0.81\nlarge | 0.93"
	if tab.Content != wantContent {
		t.Errorf("Content = %q, want %q", tab.Content, wantContent)
	}
	if tab.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", tab.PageNumber)
	}
}

func TestSharedCaptionOnOnePage(t *testing.T) {
	// Two regions on one page both receive the page's first caption.
	doc := &source.Document{
		Pages: []source.Page{{
			Text:   "Figure 1: First caption.\nFigure 2: Second caption.",
			Images: []types.BoundingBox{{X0: 1}, {X0: 2}},
		}},
	}

	figures := buildFigures(doc, firstMatch{})
	if len(figures) != 2 {
		t.Fatalf("buildFigures() returned %d figures, want 2", len(figures))
	}
	if figures[0].Caption != figures[1].Caption {
		t.Errorf("captions differ: %q vs %q", figures[0].Caption, figures[1].Caption)
	}
}
