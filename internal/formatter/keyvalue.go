package formatter

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/nao1215/pagescan/internal/report"
)

// keyValueFormatter renders a flat JSON object as "key: value" lines,
// keys sorted for stable output.
type keyValueFormatter struct{}

// Render implements report.Formatter.
func (keyValueFormatter) Render(format report.Format, value string) (string, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(value), &obj); err != nil {
		return "", fmt.Errorf("keyValue payload is not a JSON object: %w", err)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	if format == report.FormatHTML {
		sb.WriteString("<dl class=\"key-value\">\n")
		for _, k := range keys {
			sb.WriteString("<dt>" + html.EscapeString(k) + "</dt>")
			sb.WriteString("<dd>" + html.EscapeString(fmt.Sprint(obj[k])) + "</dd>\n")
		}
		sb.WriteString("</dl>\n")
		return sb.String(), nil
	}

	for _, k := range keys {
		sb.WriteString("    " + k + ": " + fmt.Sprint(obj[k]) + "\n")
	}
	return sb.String(), nil
}
