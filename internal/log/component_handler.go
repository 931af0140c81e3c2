package log

import (
	"context"
	"io"
	"log/slog"
)

// componentKey is the attribute key stamped on every record.
const componentKey = "component"

// ComponentHandler wraps an slog.Handler and adds a fixed component
// attribute to every record.
//
// Design decision: We use a handler wrapper rather than a pre-configured
// logger with a bound attribute because:
//  1. It survives logger.With() and WithGroup() chains made by callers
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. A record that already carries its own component keeps both visible
type ComponentHandler struct {
	// handler is the underlying slog handler that receives stamped records.
	handler slog.Handler

	// component is the subsystem name added to each record.
	component string
}

// NewComponentHandler creates a ComponentHandler wrapping the given
// handler. If handler is nil, slog.Default().Handler() is used.
func NewComponentHandler(handler slog.Handler, component string) *ComponentHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ComponentHandler{handler: handler, component: component}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *ComponentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle stamps the component attribute and passes the record on.
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	stamped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	stamped.AddAttrs(slog.String(componentKey, h.component))
	r.Attrs(func(a slog.Attr) bool {
		stamped.AddAttrs(a)
		return true
	})
	return h.handler.Handle(ctx, stamped)
}

// WithAttrs returns a new ComponentHandler whose underlying handler has
// the given attributes.
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ComponentHandler{
		handler:   h.handler.WithAttrs(attrs),
		component: h.component,
	}
}

// WithGroup returns a new ComponentHandler whose underlying handler has
// the given group.
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{
		handler:   h.handler.WithGroup(name),
		component: h.component,
	}
}

// NewLogger creates a text logger writing to w with every record stamped
// with the component name. Verbose lowers the level from Warn to Debug.
func NewLogger(w io.Writer, component string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewComponentHandler(handler, component))
}
