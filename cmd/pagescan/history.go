package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/pagescan/internal/config"
	"github.com/nao1215/pagescan/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command lists saved audit runs and compares their scores over time.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [url]",
		Short: "List saved audit runs and compare scores over time",
		Long: `History lists audit runs saved with 'pagescan report --save' and shows
how aggregate scores changed between runs.

Runs are stored per URL in a local SQLite database. The diff view
requires at least two saved runs for the given URL.

Examples:
  # List every saved run
  pagescan history

  # List runs for one page
  pagescan history https://example.com/

  # Show score changes between the two most recent runs
  pagescan history --diff https://example.com/

  # List every audited URL in the database
  pagescan history --urls`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("diff", "d", false,
		"Compare the two most recent runs for the given URL")
	cmd.Flags().BoolP("urls", "u", false,
		"List all audited URLs in the database")
	cmd.Flags().String("data-dir", config.XDGDataDir(),
		"Directory for the history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listURLs, err := cmd.Flags().GetBool("urls")
	if err != nil {
		return err
	}
	diff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}

	var url string
	if len(args) > 0 {
		url = args[0]
	}

	// Validate arguments before opening the database
	if diff && url == "" {
		return errors.New("a URL is required with --diff (use --urls to see audited URLs)")
	}

	store, err := history.Open(dataDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if listURLs {
		return listAuditedURLs(ctx, out, store)
	}
	if diff {
		return diffLatestRuns(ctx, out, store, url)
	}
	return listRunHistory(ctx, out, store, url)
}

// listAuditedURLs lists all URLs that have saved runs in the database.
func listAuditedURLs(ctx context.Context, w io.Writer, store *history.Store) error {
	urls, err := store.ListURLs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list URLs: %w", err)
	}

	if len(urls) == 0 {
		fmt.Fprintln(w, "No audited URLs found in the database.")
		fmt.Fprintln(w, "\nUse 'pagescan report --save <results-file>' to save a run.")
		return nil
	}

	fmt.Fprintf(w, "Audited URLs (%d):\n\n", len(urls))
	for _, u := range urls {
		fmt.Fprintf(w, "  • %s\n", u)
	}
	fmt.Fprintln(w, "\nUse 'pagescan history <url>' to see saved runs for a page.")

	return nil
}

// listRunHistory lists saved runs, newest first.
func listRunHistory(ctx context.Context, w io.Writer, store *history.Store, url string) error {
	runs, err := store.ListRuns(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		if url == "" {
			fmt.Fprintln(w, "No saved runs found in the database.")
		} else {
			fmt.Fprintf(w, "No saved runs found for %s\n", url)
		}
		fmt.Fprintln(w, "\nUse 'pagescan report --save <results-file>' to save a run.")
		return nil
	}

	fmt.Fprintf(w, "Saved runs (%d):\n\n", len(runs))
	fmt.Fprintf(w, "  %-6s  %-20s  %-40s  %s\n", "ID", "Date", "URL", "Scores")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 90))

	for _, run := range runs {
		fmt.Fprintf(w, "  %-6d  %-20s  %-40s  %s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.URL,
			formatScores(run.Scores),
		)
	}

	fmt.Fprintln(w, "\nUse 'pagescan history --diff <url>' to compare the latest two runs.")

	return nil
}

// formatScores formats per-aggregation scores into a compact summary line.
func formatScores(scores map[string]float64) string {
	if len(scores) == 0 {
		return "n/a"
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %.0f%%", name, scores[name]*100))
	}
	return strings.Join(parts, "  ")
}

// diffLatestRuns prints the score changes between the two most recent runs
// for a URL.
func diffLatestRuns(ctx context.Context, w io.Writer, store *history.Store, url string) error {
	runs, err := store.ListRuns(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) < 2 {
		return fmt.Errorf("at least 2 saved runs are required for comparison (found %d for %s)", len(runs), url)
	}

	// ListRuns returns newest first
	after, before := runs[0], runs[1]

	fmt.Fprintf(w, "Score changes for %s\n\n", url)
	fmt.Fprintf(w, "  before: run %d (%s)\n", before.ID, before.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  after:  run %d (%s)\n\n", after.ID, after.Timestamp.Format("2006-01-02 15:04:05"))

	deltas := history.Diff(before, after)
	if len(deltas) == 0 {
		fmt.Fprintln(w, "  No scored aggregations in either run.")
		return nil
	}

	for _, d := range deltas {
		fmt.Fprintf(w, "  %-24s  %3.0f%% -> %3.0f%%  (%+.0f)\n",
			d.Aggregation,
			d.Before*100,
			d.After*100,
			d.Delta()*100,
		)
	}

	return nil
}
