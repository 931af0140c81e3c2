package report

import "errors"

// Errors returned by the output layer.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. Callers can use
// errors.Is() for programmatic handling while the wrapped message still
// carries the dynamic detail (the bad name, the failing path).
var (
	// ErrUnknownFormat is returned when a format name is outside the
	// closed {pretty, json, html} set. This is a configuration error and
	// is raised before any composition or delivery work happens.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNoDocumentRenderer is returned when HTML output is requested but
	// the Printer was built without a document renderer.
	ErrNoDocumentRenderer = errors.New("no document renderer configured")
)
