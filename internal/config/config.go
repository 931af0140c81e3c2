package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/pagescan/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pagescan"

	// DefaultConfigFile is the default configuration file name.
	DefaultConfigFile = ".pagescan"

	// DefaultFormat is the output format used when neither the config
	// file nor the --format flag names one.
	DefaultFormat = "pretty"
)

// Config holds all options for one render run. It is populated from CLI
// flags layered over an optional config file and passed through the
// application via dependency injection rather than global state.
type Config struct {
	// Inputs are the results files to render. "-" means stdin.
	Inputs []string

	// Format is the output format name, validated against the closed
	// format set by Validate().
	Format string

	// Output is the destination file path. Empty means standard output.
	Output string

	// Color enables ANSI colors in pretty output.
	Color bool

	// SettleDelay is the pause before standard-output delivery.
	SettleDelay time.Duration

	// Save stores the rendered run in the local history database.
	Save bool

	// Verbose enables debug-level diagnostics.
	Verbose bool

	// ConfigFilePath is the explicit --config path, if any.
	ConfigFilePath string

	// DataDir is the directory holding the history database.
	DataDir string
}

// NewConfig returns a Config with built-in defaults applied.
func NewConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Color:       true,
		SettleDelay: report.DefaultStdoutSettleDelay,
		DataDir:     XDGDataDir(),
	}
}

// Validate checks the configuration for consistency. The format name is
// checked here, before any composition work, so an invalid name never
// reaches the printer.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if len(c.Inputs) > 1 && c.Output != "" {
		return fmt.Errorf("%w, got %d inputs", ErrOutputConflict, len(c.Inputs))
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.SettleDelay < 0 {
		return ErrInvalidSettleDelay
	}
	return nil
}

// XDGDataDir returns the XDG data directory for pagescan
// (typically ~/.local/share/pagescan).
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
