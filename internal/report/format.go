package report

import "fmt"

// Format selects the output representation of an audit run.
type Format int

// The closed set of output formats. No other values are valid; anything
// else coming in from the CLI must be rejected by ParseFormat before it
// reaches the Printer.
const (
	// FormatPretty is the colorized human-readable text report.
	FormatPretty Format = iota

	// FormatJSON is the indented JSON dump of the full result tree.
	FormatJSON

	// FormatHTML is the standalone HTML document with inline assets.
	FormatHTML
)

// formatNames maps each Format to its canonical CLI name, indexed by the
// Format value itself.
var formatNames = [...]string{
	FormatPretty: "pretty",
	FormatJSON:   "json",
	FormatHTML:   "html",
}

// String returns the canonical name of the format, or "unknown" for values
// outside the closed set.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat converts a format name into its Format value. Unknown names
// return ErrUnknownFormat wrapped with the offending name; callers must
// not fall back to a default.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid formats: %v)", ErrUnknownFormat, name, ValidFormats())
}

// ValidFormats returns the canonical format names for flag validation and
// help text.
func ValidFormats() []string {
	names := make([]string, len(formatNames))
	copy(names, formatNames[:])
	return names
}
