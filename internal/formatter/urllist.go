package formatter

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/nao1215/pagescan/internal/report"
)

// urlListFormatter renders a JSON array of URL strings.
type urlListFormatter struct{}

// Render implements report.Formatter.
func (urlListFormatter) Render(format report.Format, value string) (string, error) {
	var urls []string
	if err := json.Unmarshal([]byte(value), &urls); err != nil {
		return "", fmt.Errorf("urlList payload is not a JSON string array: %w", err)
	}

	var sb strings.Builder
	if format == report.FormatHTML {
		sb.WriteString("<ul class=\"url-list\">\n")
		for _, u := range urls {
			sb.WriteString("<li>" + html.EscapeString(u) + "</li>\n")
		}
		sb.WriteString("</ul>\n")
		return sb.String(), nil
	}

	for _, u := range urls {
		sb.WriteString("    - " + u + "\n")
	}
	return sb.String(), nil
}
