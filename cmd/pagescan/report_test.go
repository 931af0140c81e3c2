package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/pagescan/internal/history"
	"github.com/nao1215/pagescan/internal/model"
)

// sampleResultsJSON is a small but complete results document with a
// number-scored audit referenced from an aggregation item.
const sampleResultsJSON = `{
  "url": "https://example.com/",
  "version": "2.1.0",
  "aggregations": [
    {
      "name": "Performance",
      "items": [
        {
          "overall": 0.9,
          "name": "Page load",
          "scored": true,
          "subItems": ["first-paint"]
        }
      ]
    }
  ],
  "audits": {
    "first-paint": {
      "displayValue": "1.2s",
      "debugString": "",
      "score": 90,
      "description": "First meaningful paint"
    }
  }
}`

// writeSampleResults writes the sample results document to a temp file.
func writeSampleResults(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte(sampleResultsJSON), 0o600); err != nil {
		t.Fatalf("failed to write sample results: %v", err)
	}
	return path
}

// runCommand executes the root command with the given arguments and
// returns captured stdout.
func runCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if !strings.HasPrefix(cmd.Use, "report") {
			t.Errorf("expected use to start with 'report', got %q", cmd.Use)
		}
	})

	t.Run("has format flag with pretty default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("format")
		if flag == nil {
			t.Fatal("expected format flag")
		}
		if flag.DefValue != "pretty" {
			t.Errorf("expected default 'pretty', got %q", flag.DefValue)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("output") == nil {
			t.Error("expected output flag")
		}
	})

	t.Run("has save flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("save") == nil {
			t.Error("expected save flag")
		}
	})
}

func TestReportCmdJSONToFile(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	output := filepath.Join(t.TempDir(), "report.json")

	_, err := runCommand(t, nil, "report", "-f", "json", "-o", output, "--settle-delay", "0", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var got model.Results
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid results JSON: %v", err)
	}
	if got.URL != "https://example.com/" {
		t.Errorf("expected URL 'https://example.com/', got %q", got.URL)
	}
	if _, ok := got.Audits["first-paint"]; !ok {
		t.Error("expected audit 'first-paint' in output")
	}
}

func TestReportCmdPrettyToStdout(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)

	out, err := runCommand(t, nil, "report", "--no-color", "--settle-delay", "0", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Audit results (2.1.0):") {
		t.Errorf("expected header in output, got %q", out)
	}
	if !strings.Contains(out, "Performance") {
		t.Errorf("expected aggregation name in output, got %q", out)
	}
	if !strings.Contains(out, "First meaningful paint") {
		t.Errorf("expected audit description in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected stdout output to end with a newline")
	}
}

func TestReportCmdHTMLToFile(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	output := filepath.Join(t.TempDir(), "report.html")

	_, err := runCommand(t, nil, "report", "-f", "html", "-o", output, "--settle-delay", "0", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	html := string(data)
	if !strings.Contains(html, "<!doctype html>") {
		t.Error("expected doctype in HTML output")
	}
	if !strings.Contains(html, "Performance") {
		t.Error("expected aggregation name in HTML output")
	}
	if !strings.Contains(html, "<style>") {
		t.Error("expected inline styles in HTML output")
	}
}

func TestReportCmdStdin(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "report.json")
	stdin := strings.NewReader(sampleResultsJSON)

	_, err := runCommand(t, stdin, "report", "-f", "json", "-o", output, "--settle-delay", "0", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "first-paint") {
		t.Error("expected audit name in output rendered from stdin")
	}
}

func TestReportCmdInvalidFormat(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	output := filepath.Join(t.TempDir(), "report.out")

	_, err := runCommand(t, nil, "report", "-f", "xml", "-o", output, "--settle-delay", "0", input)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to name the bad format, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("expected no output file for unknown format")
	}
}

func TestReportCmdNoInput(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, nil, "report", "--settle-delay", "0")
	if err == nil {
		t.Fatal("expected error when no input is given")
	}
}

func TestReportCmdMultipleInputsWithOutput(t *testing.T) {
	t.Parallel()

	first := writeSampleResults(t)
	second := writeSampleResults(t)
	output := filepath.Join(t.TempDir(), "report.json")

	_, err := runCommand(t, nil, "report", "-f", "json", "-o", output, "--settle-delay", "0", first, second)
	if err == nil {
		t.Fatal("expected error for multiple inputs with a single output file")
	}
}

func TestReportCmdMissingInputFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.json")

	_, err := runCommand(t, nil, "report", "--settle-delay", "0", missing)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("expected error to name the missing file, got %v", err)
	}
}

func TestReportCmdConfigFile(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "report.html")

	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("format: html\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Format comes from the config file because the flag is not set.
	_, err := runCommand(t, nil, "report", "-c", configPath, "-o", output, "--settle-delay", "0", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "<!doctype html>") {
		t.Error("expected HTML output when config file sets format: html")
	}
}

func TestReportCmdConfigFileFlagWins(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "report.out")

	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("format: html\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// An explicit flag overrides the config file value.
	_, err := runCommand(t, nil, "report", "-c", configPath, "-f", "json", "-o", output, "--settle-delay", "0", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var got model.Results
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("expected JSON output when -f json is set, got: %v", err)
	}
}

func TestReportCmdExplicitConfigNotFound(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	missing := filepath.Join(t.TempDir(), "nope.yml")

	_, err := runCommand(t, nil, "report", "-c", missing, "--settle-delay", "0", input)
	if err == nil {
		t.Fatal("expected error for explicit config file that does not exist")
	}
}

func TestReportCmdSaveRun(t *testing.T) {
	t.Parallel()

	input := writeSampleResults(t)
	dataDir := t.TempDir()
	output := filepath.Join(t.TempDir(), "report.json")

	_, err := runCommand(t, nil, "report",
		"-f", "json", "-o", output, "--settle-delay", "0",
		"--save", "--data-dir", dataDir, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store, err := history.Open(dataDir, history.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to reopen history database: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].URL != "https://example.com/" {
		t.Errorf("expected saved URL 'https://example.com/', got %q", runs[0].URL)
	}
	if got := runs[0].Scores["Performance"]; got != 0.9 {
		t.Errorf("expected Performance score 0.9, got %f", got)
	}
}
