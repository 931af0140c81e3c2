// Package formatter renders the extended-info payloads attached to audit
// results.
//
// Each audit may carry an opaque JSON payload plus the name of the
// formatter that knows how to display it. The Registry resolves those
// names; the report package only ever performs a lookup and invokes the
// returned formatter, so new payload shapes can be added here without
// touching the renderer.
//
// Shipped formatters:
//   - urlList: a JSON array of URLs, shown as an indented bullet list
//   - table: a JSON array of flat objects, shown as a markdown table
//   - keyValue: a JSON object, shown as indented "key: value" lines
//   - null: renders nothing, for audits whose payload is machine-only
package formatter
