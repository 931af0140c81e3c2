package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no results file is given to render.
	ErrNoInput = errors.New("no input specified: provide one or more results files (or - for stdin)")

	// ErrOutputConflict is returned when several inputs would be written
	// to one output file, each overwriting the previous one.
	ErrOutputConflict = errors.New("conflicting output: --output accepts a single input file")

	// ErrInvalidSettleDelay is returned when the stdout settle delay is
	// negative. Use 0 to disable the delay.
	ErrInvalidSettleDelay = errors.New("invalid settle delay: must be non-negative")

	// ErrConfigNotFound is returned when an explicitly specified
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
