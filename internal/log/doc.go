// Package log provides the diagnostic logging setup, built on top of the
// standard slog package.
//
// Diagnostics here are advisory: nothing in the output layer depends on a
// log record being emitted. The one structural requirement is that every
// record names the subsystem it came from, so a report interleaved with
// diagnostics on a terminal can be read back apart. ComponentHandler
// enforces that by stamping a fixed "component" attribute on every record
// passing through it.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, "printer", verbose)
//	logger.Warn("unknown extended info formatter", "formatter", name)
//	// => component=printer formatter=... on stderr
package log
