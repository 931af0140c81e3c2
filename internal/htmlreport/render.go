package htmlreport

import (
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"strings"

	"github.com/nao1215/pagescan/internal/model"
	"github.com/nao1215/pagescan/internal/report"
)

// Renderer produces the HTML representation of an audit run. It implements
// report.DocumentRenderer.
type Renderer struct {
	tmpl *template.Template

	// formatters renders extended-info payloads inside the document.
	// nil skips extended info entirely.
	formatters report.FormatterRegistry

	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormatterRegistry enables extended-info sections in the document.
func WithFormatterRegistry(r report.FormatterRegistry) Option {
	return func(re *Renderer) {
		re.formatters = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(re *Renderer) {
		re.logger = l
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		tmpl:   template.Must(template.New("report").Parse(documentTemplate)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the document. When inline is true the stylesheet is
// embedded in the document head; otherwise the document links an external
// report.css next to it.
func (r *Renderer) Render(results *model.Results, inline bool) (string, error) {
	view, err := r.buildView(results, inline)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render HTML document: %w", err)
	}
	return sb.String(), nil
}

// documentView is the fully resolved input of the template.
type documentView struct {
	URL          string
	Version      string
	InlineCSS    template.CSS
	Aggregations []aggregationView
}

type aggregationView struct {
	Name  string
	Items []itemView
}

type itemView struct {
	Name    string
	Scored  bool
	Percent int
	Tier    string
	Audits  []auditView
}

type auditView struct {
	Description  string
	DisplayValue string
	DebugString  string
	ScoreText    string
	ScoreClass   string
	Extended     template.HTML
}

// buildView resolves the tree into the template input. A subitem reference
// missing from the audits map fails the whole render.
func (r *Renderer) buildView(results *model.Results, inline bool) (*documentView, error) {
	view := &documentView{
		URL:     results.URL,
		Version: results.Version,
	}
	if inline {
		view.InlineCSS = template.CSS(documentStyle)
	}

	for _, agg := range results.Aggregations {
		av := aggregationView{Name: agg.Name}
		for _, item := range agg.Items {
			iv := itemView{
				Name:    item.Name,
				Scored:  item.Scored,
				Percent: int(math.Round(item.Overall * 100)),
				Tier:    tierClass(math.Round(item.Overall * 100)),
			}
			for _, sub := range item.SubItems {
				audit, err := results.Resolve(sub)
				if err != nil {
					return nil, fmt.Errorf("failed to render %q: %w", agg.Name, err)
				}
				iv.Audits = append(iv.Audits, r.buildAuditView(audit))
			}
			av.Items = append(av.Items, iv)
		}
		view.Aggregations = append(view.Aggregations, av)
	}
	return view, nil
}

// buildAuditView flattens one audit for display.
func (r *Renderer) buildAuditView(audit model.AuditResult) auditView {
	av := auditView{
		Description:  audit.Description,
		DisplayValue: audit.DisplayValue,
		DebugString:  audit.DebugString,
		ScoreText:    audit.Score.Text(),
		ScoreClass:   scoreClass(audit.Score),
	}
	if audit.Score.Kind() == model.ScoreBool {
		if audit.Score.Bool() {
			av.ScoreText = "✓"
		} else {
			av.ScoreText = "✘"
		}
	}
	if audit.ExtendedInfo != nil && audit.ExtendedInfo.Value != "" && r.formatters != nil {
		if f, ok := r.formatters.Lookup(audit.ExtendedInfo.Formatter); ok {
			text, err := f.Render(report.FormatHTML, audit.ExtendedInfo.Value)
			if err != nil {
				r.logger.Warn("extended info formatter failed", "component", "htmlreport", "formatter", audit.ExtendedInfo.Formatter, "error", err)
			} else {
				// Formatter output is trusted markup produced in-process.
				av.Extended = template.HTML(text) //nolint:gosec // formatters escape their inputs
			}
		} else {
			r.logger.Warn("unknown extended info formatter", "component", "htmlreport", "formatter", audit.ExtendedInfo.Formatter)
		}
	}
	return av
}

// scoreClass maps a score to its stylesheet class.
func scoreClass(s model.Score) string {
	switch s.Kind() {
	case model.ScoreBool:
		if s.Bool() {
			return "pass"
		}
		return "fail"
	case model.ScoreNumber:
		return tierClass(s.Number())
	default:
		return "info"
	}
}

// tierClass classifies a numeric score with the shared cut points.
func tierClass(n float64) string {
	switch {
	case n <= report.LowScoreCeiling:
		return "low"
	case n <= report.MediumScoreCeiling:
		return "medium"
	default:
		return "high"
	}
}
