package formatter

import (
	"github.com/nao1215/pagescan/internal/report"
)

// Registry resolves extended-info formatter names. It implements
// report.FormatterRegistry.
type Registry struct {
	byName map[string]report.Formatter
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]report.Formatter)}
}

// Default creates a Registry with all shipped formatters registered.
func Default() *Registry {
	r := New()
	r.Register("urlList", urlListFormatter{})
	r.Register("table", tableFormatter{})
	r.Register("keyValue", keyValueFormatter{})
	r.Register("null", nullFormatter{})
	return r
}

// Register adds or replaces a formatter under the given name.
func (r *Registry) Register(name string, f report.Formatter) {
	r.byName[name] = f
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (report.Formatter, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Names returns the registered formatter names, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

// nullFormatter renders nothing. Some audits attach payloads that only
// downstream tooling consumes; they still name a formatter so the lookup
// succeeds.
type nullFormatter struct{}

// Render implements report.Formatter.
func (nullFormatter) Render(_ report.Format, _ string) (string, error) {
	return "", nil
}
