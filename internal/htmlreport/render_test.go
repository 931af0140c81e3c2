package htmlreport

import (
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/pagescan/internal/formatter"
	"github.com/nao1215/pagescan/internal/model"
)

// createTestResults builds a small tree covering the score kinds.
func createTestResults() *model.Results {
	return &model.Results{
		URL: "https://example.com",
		Aggregations: []model.Aggregation{{
			Name: "Performance",
			Items: []model.AggregationItem{{
				Overall: 0.8,
				Name:    "Metrics",
				Scored:  true,
				SubItems: []model.SubItem{
					model.RefSubItem("first-paint"),
					model.InlineSubItem(model.AuditResult{
						Score:       model.BoolScore(false),
						Description: "avoids render blocking stylesheets",
						DebugString: "2 stylesheets block rendering",
					}),
				},
			}},
		}},
		Audits: map[string]model.AuditResult{
			"first-paint": {
				DisplayValue: "1,204ms",
				Score:        model.NumberScore(90),
				Description:  "first meaningful paint",
			},
		},
		Version: "1.0",
	}
}

// TestRender tests the document shell and score classification.
func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("produces a complete document", func(t *testing.T) {
		t.Parallel()

		out, err := New().Render(createTestResults(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "<!doctype html>") {
			t.Error("expected doctype at document start")
		}
		for _, want := range []string{
			"https://example.com",
			"Performance",
			"first meaningful paint",
			"80%",
			"(1,204ms)",
			"2 stylesheets block rendering",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in document", want)
			}
		}
	})

	t.Run("inline embeds the stylesheet", func(t *testing.T) {
		t.Parallel()

		out, err := New().Render(createTestResults(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<style>") {
			t.Error("expected embedded stylesheet")
		}
		if strings.Contains(out, `<link rel="stylesheet"`) {
			t.Error("expected no external stylesheet link when inline")
		}
	})

	t.Run("non-inline links the stylesheet", func(t *testing.T) {
		t.Parallel()

		out, err := New().Render(createTestResults(), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `<link rel="stylesheet" href="report.css">`) {
			t.Error("expected external stylesheet link")
		}
	})

	t.Run("scores carry tier classes", func(t *testing.T) {
		t.Parallel()

		out, err := New().Render(createTestResults(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `class="score high"`) {
			t.Error("expected high tier class for score 90 and the 80% item")
		}
		if !strings.Contains(out, `class="score fail"`) {
			t.Error("expected fail class for false boolean score")
		}
	})

	t.Run("unresolved reference fails the render", func(t *testing.T) {
		t.Parallel()

		broken := createTestResults()
		broken.Aggregations[0].Items[0].SubItems = []model.SubItem{
			model.RefSubItem("no-such-audit"),
		}
		_, err := New().Render(broken, true)
		if !errors.Is(err, model.ErrUnresolvedAudit) {
			t.Fatalf("expected ErrUnresolvedAudit, got %v", err)
		}
	})

	t.Run("escapes page-controlled text", func(t *testing.T) {
		t.Parallel()

		r := createTestResults()
		r.URL = `https://example.com/?q=<script>alert(1)</script>`
		out, err := New().Render(r, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "<script>alert(1)</script>") {
			t.Error("expected URL escaped in document body")
		}
	})
}

// TestRenderExtendedInfo tests formatter integration in the document.
func TestRenderExtendedInfo(t *testing.T) {
	t.Parallel()

	results := createTestResults()
	results.Aggregations[0].Items[0].SubItems = []model.SubItem{
		model.InlineSubItem(model.AuditResult{
			Score:       model.NumberScore(30),
			Description: "render blocking resources",
			ExtendedInfo: &model.ExtendedInfo{
				Value:     `["https://example.com/a.css"]`,
				Formatter: "urlList",
			},
		}),
	}

	t.Run("renders formatter output as markup", func(t *testing.T) {
		t.Parallel()

		r := New(WithFormatterRegistry(formatter.Default()))
		out, err := r.Render(results, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<li>https://example.com/a.css</li>") {
			t.Error("expected url list markup from formatter")
		}
	})

	t.Run("no registry skips extended info", func(t *testing.T) {
		t.Parallel()

		out, err := New().Render(results, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, `class="extended"`) {
			t.Error("expected no extended section without a registry")
		}
	})
}
