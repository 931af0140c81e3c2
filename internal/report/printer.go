package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/pagescan/internal/model"
)

// DefaultStdoutSettleDelay is the pause before writing a report to
// standard output. Diagnostic logging may still be flushing on the same
// terminal; the pause keeps the report from interleaving with it. It is an
// ordering nudge, not a scheduling guarantee.
const DefaultStdoutSettleDelay = 50 * time.Millisecond

// DocumentRenderer renders a result tree as a standalone document.
// When inline is true all assets (stylesheets) are embedded in the
// document itself.
type DocumentRenderer interface {
	Render(results *model.Results, inline bool) (string, error)
}

// Formatter renders one audit's extended-info payload in the requested
// output format.
type Formatter interface {
	Render(format Format, value string) (string, error)
}

// FormatterRegistry resolves extended-info formatter names to Formatters.
type FormatterRegistry interface {
	Lookup(name string) (Formatter, bool)
}

// Printer converts a result tree into one of the output formats and
// delivers it. A Printer is safe to reuse across runs; it holds no state
// from previous invocations.
type Printer struct {
	// doc renders the HTML representation. nil disables HTML output.
	doc DocumentRenderer

	// formatters resolves extended-info formatter names. nil means every
	// lookup misses.
	formatters FormatterRegistry

	// palette is the color table for the pretty format.
	palette *palette

	// stdout receives deliveries with an empty destination path.
	stdout io.Writer

	// settleDelay is the pause before a standard-output delivery.
	settleDelay time.Duration

	// logger receives advisory diagnostics. Never load-bearing.
	logger *slog.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithDocumentRenderer sets the renderer used for HTML output.
func WithDocumentRenderer(d DocumentRenderer) Option {
	return func(p *Printer) {
		p.doc = d
	}
}

// WithFormatterRegistry sets the registry used to resolve extended-info
// formatter names in pretty output.
func WithFormatterRegistry(r FormatterRegistry) Option {
	return func(p *Printer) {
		p.formatters = r
	}
}

// WithColor forces color output on or off for the pretty format.
// The default is on.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.palette = newPalette(enabled)
	}
}

// WithStdout redirects standard-output deliveries, typically for tests.
func WithStdout(w io.Writer) Option {
	return func(p *Printer) {
		p.stdout = w
	}
}

// WithSettleDelay overrides the pause before standard-output deliveries.
// Zero disables the pause.
func WithSettleDelay(d time.Duration) Option {
	return func(p *Printer) {
		p.settleDelay = d
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = l
	}
}

// New creates a Printer with colors enabled, the default stdout settle
// delay, and delivery to os.Stdout.
func New(opts ...Option) *Printer {
	p := &Printer{
		palette:     newPalette(true),
		stdout:      os.Stdout,
		settleDelay: DefaultStdoutSettleDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compose produces the output representation of results for the given
// format. It performs no I/O. Results are read-only to this method.
func (p *Printer) Compose(results *model.Results, format Format) (string, error) {
	switch format {
	case FormatHTML:
		if p.doc == nil {
			return "", ErrNoDocumentRenderer
		}
		return p.doc.Render(results, true)
	case FormatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize results: %w", err)
		}
		return string(data), nil
	case FormatPretty:
		return p.renderPretty(results)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write resolves the format name, composes the output, and delivers it to
// path. An empty path means standard output. On success the original,
// unmodified results are returned so callers can chain further processing
// after the side effect.
//
// Composition errors (including an invalid format name) abort before any
// bytes are written. Delivery errors surface the underlying I/O error and
// leave no guarantee about partial file state.
func (p *Printer) Write(results *model.Results, format, path string) (*model.Results, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	body, err := p.Compose(results, f)
	if err != nil {
		return nil, err
	}

	if err := p.deliver(body, path); err != nil {
		return nil, err
	}
	return results, nil
}

// deliver writes the composed body to its destination. Standard output
// gets a trailing newline after the settle delay; files get the body
// verbatim, truncating any previous content. A missing parent directory
// is the caller's failure: no directories are created here.
func (p *Printer) deliver(body, path string) error {
	if path == "" {
		time.Sleep(p.settleDelay)
		if _, err := fmt.Fprintln(p.stdout, body); err != nil {
			return fmt.Errorf("failed to write report to stdout: %w", err)
		}
		return nil
	}

	// 0600 because reports may describe non-public pages.
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	p.logger.Info("report written", "path", path)
	return nil
}
