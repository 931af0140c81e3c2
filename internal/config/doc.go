// Package config holds the CLI configuration and its YAML file loader.
//
// Configuration is assembled in three layers: built-in defaults, an
// optional .pagescan YAML file (current directory, then home directory,
// an explicit --config path wins), and CLI flags. Flags always beat file
// values; the file only fills in what the user did not say on the command
// line.
//
// The Config struct is populated once at command start and passed down by
// value-carrying dependency injection; nothing in this package is global
// state.
package config
