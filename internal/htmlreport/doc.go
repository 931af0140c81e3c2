// Package htmlreport renders an audit result tree as a standalone HTML
// document.
//
// The renderer resolves every subitem up front into a flat view model and
// only then executes the template, so referential-integrity violations
// surface as ordinary errors instead of template execution failures.
//
// Design decision: We use html/template from the standard library rather
// than a third-party engine. The document is a single static page with
// contextual auto-escaping requirements, which is exactly what
// html/template covers; a heavier templating dependency would buy nothing.
package htmlreport
