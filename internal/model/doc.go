// Package model defines the audit result tree consumed by the output layer.
//
// The tree is produced upstream by an audit pipeline and crosses the process
// boundary as JSON, so every type in this package round-trips through
// encoding/json without loss. Two fields are unions on the wire and carry
// custom marshaling:
//   - AuditResult.Score is a boolean, a number, or a string.
//   - AggregationItem.SubItems entries are either an inline AuditResult
//     object or a string key referencing Results.Audits.
//
// Design decision: the unions are small tagged structs rather than `any`
// fields. This keeps type switches out of the renderers and makes the
// invalid states unrepresentable after unmarshaling.
package model
