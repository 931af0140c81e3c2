// Package report converts an audit result tree into its output form and
// delivers it to a destination.
//
// Three formats exist: a colorized human-readable text report, an indented
// JSON dump, and a rendered HTML document. Format names are validated at
// the boundary by ParseFormat; the rest of the package trusts the resolved
// Format value.
//
// The Printer composes the chosen representation synchronously (pure CPU
// work) and then performs a single delivery step to standard output or a
// file. Delivery either succeeds completely or fails with the underlying
// I/O error; there is no retry and no partial-write recovery. Concurrent
// Write calls targeting the same file race at the filesystem, not inside
// this package.
//
// Design decision: the HTML renderer and the extended-info formatters are
// consumed through small interfaces (DocumentRenderer, FormatterRegistry)
// rather than imported directly. This keeps the package free of rendering
// engines and lets tests substitute stubs.
package report
