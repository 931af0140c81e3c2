package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/pagescan/internal/config"
	"github.com/nao1215/pagescan/internal/formatter"
	"github.com/nao1215/pagescan/internal/history"
	"github.com/nao1215/pagescan/internal/htmlreport"
	"github.com/nao1215/pagescan/internal/log"
	"github.com/nao1215/pagescan/internal/model"
	"github.com/nao1215/pagescan/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [results-file...]",
		Short: "Render audit results in the selected output format",
		Long: `Report reads web page audit results in JSON form and renders them
as a colorized terminal report, a JSON document, or a standalone HTML page.

Each argument is a path to a results file. Use "-" to read a single
results document from standard input.

Examples:
  # Render results to the terminal with colors
  pagescan report results.json

  # Render an HTML report to a file
  pagescan report -f html -o report.html results.json

  # Render results piped from an audit run
  cat results.json | pagescan report -

  # Render several result files in one invocation
  pagescan report site1.json site2.json site3.json

  # Save the run to the local history database
  pagescan report --save results.json

  # Use a custom configuration file
  pagescan report -c myconfig.yaml results.json

Configuration file (.pagescan) example:
  format: html
  output: report.html
  color: false
  save: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	// Output flags
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		fmt.Sprintf("Output format (%s)", strings.Join(report.ValidFormats(), ", ")))
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file instead of stdout")
	cmd.Flags().Bool("no-color", false,
		"Disable ANSI colors in pretty output")
	cmd.Flags().Duration("settle-delay", report.DefaultStdoutSettleDelay,
		"Pause before writing to stdout so audit logs can flush")

	// History flags
	cmd.Flags().BoolP("save", "s", false,
		"Save rendered results to the local history database")
	cmd.Flags().String("data-dir", config.XDGDataDir(),
		"Directory for the history database")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagescan in current or home directory)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), "report", cfg.Verbose)
	slog.SetDefault(logger)

	loaded, err := loadInputs(cmd, cfg.Inputs)
	if err != nil {
		return err
	}

	printer := newPrinter(cfg, logger, cmd.OutOrStdout())

	var store *history.Store
	if cfg.Save {
		store, err = history.Open(cfg.DataDir, history.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		logger.Info("history database opened", "dir", cfg.DataDir)
	}

	for i, results := range loaded {
		written, err := printer.Write(results, cfg.Format, cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", cfg.Inputs[i], err)
		}

		if store != nil {
			id, err := store.SaveRun(cmd.Context(), written)
			if err != nil {
				return fmt.Errorf("failed to save run for %s: %w", written.URL, err)
			}
			logger.Info("run saved", "id", id, "url", written.URL)
		}
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}
	cfg.Color = !noColor

	cfg.SettleDelay, err = cmd.Flags().GetDuration("settle-delay")
	if err != nil {
		return nil, err
	}

	cfg.Save, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.DataDir, err = cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file, cmd.Flags().Changed)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	// Get positional arguments (results files)
	cfg.Inputs = args

	return cfg, nil
}

// loadInputs reads and parses all results files concurrently.
// The path "-" reads a single results document from the command's stdin.
func loadInputs(cmd *cobra.Command, paths []string) ([]*model.Results, error) {
	g, _ := errgroup.WithContext(cmd.Context())
	loaded := make([]*model.Results, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			var raw []byte
			var err error
			if path == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("failed to read results from %s: %w", path, err)
			}

			var results model.Results
			if err := json.Unmarshal(raw, &results); err != nil {
				return fmt.Errorf("failed to parse results from %s: %w", path, err)
			}
			loaded[i] = &results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// newPrinter assembles a report printer with the default formatter registry
// and the HTML document renderer.
func newPrinter(cfg *config.Config, logger *slog.Logger, stdout io.Writer) *report.Printer {
	registry := formatter.Default()
	doc := htmlreport.New(
		htmlreport.WithFormatterRegistry(registry),
		htmlreport.WithLogger(logger),
	)

	return report.New(
		report.WithDocumentRenderer(doc),
		report.WithFormatterRegistry(registry),
		report.WithColor(cfg.Color),
		report.WithSettleDelay(cfg.SettleDelay),
		report.WithStdout(stdout),
		report.WithLogger(logger),
	)
}
