// Package main provides the entry point for the pagescan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pagescan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagescan",
		Short: "Render web page audit results as terminal, JSON, or HTML reports",
		Long: `pagescan turns web page audit results into human-readable reports.

It reads audit results in JSON form and renders them as a colorized
terminal report, a JSON document, or a standalone HTML page. Runs can
be saved to a local database and compared over time.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
