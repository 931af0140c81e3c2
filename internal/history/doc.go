// Package history provides SQLite-based storage for rendered audit runs.
//
// Every saved run records the audited URL, the pipeline version, the full
// result tree as JSON, and one summary score per aggregation (the mean
// overall of its scored items). The summaries make listing and diffing
// cheap without deserializing whole trees.
//
// Design decision: We use a single database file in the XDG data
// directory rather than one file per URL. This keeps cross-URL listing a
// single query and makes backup/restore a one-file operation.
package history
