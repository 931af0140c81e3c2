package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/pagescan/internal/report"
)

// tableFormatter renders a JSON array of flat objects as a table. Rows may
// have uneven keys; the column set is the sorted union so nothing is
// dropped.
type tableFormatter struct{}

// Render implements report.Formatter.
func (tableFormatter) Render(format report.Format, value string) (string, error) {
	var rows []map[string]any
	if err := json.Unmarshal([]byte(value), &rows); err != nil {
		return "", fmt.Errorf("table payload is not a JSON object array: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}

	columns := columnSet(rows)
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(columns))
		for j, col := range columns {
			if v, ok := row[col]; ok {
				cells[i][j] = fmt.Sprint(v)
			}
		}
	}

	md := markdown.NewMarkdown(io.Discard)
	md.Table(markdown.TableSet{
		Header: columns,
		Rows:   cells,
	})
	text := md.String()

	if format == report.FormatHTML {
		// The document stylesheet renders pre-formatted tables as-is.
		return "<pre class=\"audit-table\">\n" + text + "</pre>\n", nil
	}

	// Indent the table under its audit line.
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString("    " + line + "\n")
	}
	return sb.String(), nil
}

// columnSet returns the sorted union of keys across all rows.
func columnSet(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
