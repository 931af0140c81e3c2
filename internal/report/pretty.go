package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/nao1215/pagescan/internal/model"
)

// renderPretty walks the result tree and produces the human-readable text
// report. Aggregations, items, and subitems are emitted strictly in input
// order. The tree is never mutated.
func (p *Printer) renderPretty(results *model.Results) (string, error) {
	var sb strings.Builder

	// Header with the audit pipeline version and the audited URL.
	sb.WriteString("\n")
	sb.WriteString(p.palette.bold.Sprintf("Audit results (%s):", results.Version))
	sb.WriteString(" " + results.URL + "\n\n")

	for _, agg := range results.Aggregations {
		sb.WriteString(p.palette.bold.Sprint(agg.Name) + "\n\n")

		for _, item := range agg.Items {
			p.renderItemHeading(&sb, item)
			for _, sub := range item.SubItems {
				audit, err := results.Resolve(sub)
				if err != nil {
					return "", fmt.Errorf("failed to render %q: %w", agg.Name, err)
				}
				p.renderAudit(&sb, audit)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// renderItemHeading emits the item label line. Unscored items show no
// percentage no matter what Overall holds.
func (p *Printer) renderItemHeading(sb *strings.Builder, item model.AggregationItem) {
	if item.Name == "" {
		return
	}

	line := p.palette.bold.Sprint(item.Name) + ":"
	if item.Scored {
		pct := math.Round(item.Overall * 100)
		line += " " + p.palette.scoreToken(model.NumberScore(pct), "%")
	}
	sb.WriteString(line + "\n")
}

// renderAudit emits one audit line plus its optional continuations.
func (p *Printer) renderAudit(sb *strings.Builder, audit model.AuditResult) {
	line := "  * " + p.palette.scoreToken(audit.Score, "") + " " + audit.Description
	if audit.DisplayValue != "" {
		line += " (" + p.palette.bold.Sprint(audit.DisplayValue) + ")"
	}
	sb.WriteString(line + "\n")

	if audit.DebugString != "" {
		sb.WriteString("    " + audit.DebugString + "\n")
	}

	if audit.ExtendedInfo != nil && audit.ExtendedInfo.Value != "" {
		p.renderExtendedInfo(sb, audit.ExtendedInfo)
	}
}

// renderExtendedInfo appends the formatter output for an audit's extended
// info. Formatter problems are advisory: the audit line already carries
// the result, so a missing or failing formatter is logged and skipped
// instead of failing the whole report.
func (p *Printer) renderExtendedInfo(sb *strings.Builder, info *model.ExtendedInfo) {
	if p.formatters == nil {
		p.logger.Warn("no formatter registry configured", "component", "printer", "formatter", info.Formatter)
		return
	}

	f, ok := p.formatters.Lookup(info.Formatter)
	if !ok {
		p.logger.Warn("unknown extended info formatter", "component", "printer", "formatter", info.Formatter)
		return
	}

	text, err := f.Render(FormatPretty, info.Value)
	if err != nil {
		p.logger.Warn("extended info formatter failed", "component", "printer", "formatter", info.Formatter, "error", err)
		return
	}
	sb.WriteString(text)
}
