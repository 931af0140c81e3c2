package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the YAML configuration file shape. Pointer fields distinguish
// "absent" from a present zero value so the merge only overrides what the
// file actually sets.
type File struct {
	// Format is the default output format name.
	Format string `yaml:"format"`

	// Output is the default destination file path.
	Output string `yaml:"output"`

	// Color enables or disables ANSI colors in pretty output.
	Color *bool `yaml:"color"`

	// SettleDelayMS overrides the stdout settle delay, in milliseconds.
	SettleDelayMS *int `yaml:"settle_delay_ms"`

	// Save stores every rendered run in the history database.
	Save *bool `yaml:"save"`
}

// LoadConfigFile loads a configuration file. If the file does not exist,
// it returns ErrConfigNotFound. Callers should handle this based on
// whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .pagescan in the current directory
//  3. Look for .pagescan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges file values into the config. The set function reports
// whether a flag was explicitly given on the command line; flags always
// win over file values.
func (c *Config) Apply(f *File, set func(name string) bool) {
	if f == nil {
		return
	}
	if f.Format != "" && !set("format") {
		c.Format = f.Format
	}
	if f.Output != "" && !set("output") {
		c.Output = f.Output
	}
	if f.Color != nil && !set("no-color") {
		c.Color = *f.Color
	}
	if f.SettleDelayMS != nil && !set("settle-delay") {
		c.SettleDelay = time.Duration(*f.SettleDelayMS) * time.Millisecond
	}
	if f.Save != nil && !set("save") {
		c.Save = *f.Save
	}
}
