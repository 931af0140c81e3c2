package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pagescan/internal/model"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "pagescan.db"

// Store provides SQLite-based storage for audit runs.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store in the given directory. If
// CreateIfNotExists is false and the database doesn't exist, an error is
// returned instead of creating an empty history.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// modernc.org/sqlite connection strings: mode=rw forbids creating new
	// files, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per rendered audit run
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		version TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		results TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_url ON runs(url);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);

	-- Per-aggregation summary scores for cheap listing and diffing
	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		aggregation TEXT NOT NULL,
		overall REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_run ON scores(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun stores one audit run and its aggregation summaries. It returns
// the new run's ID.
func (s *Store) SaveRun(ctx context.Context, results *model.Results) (int64, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize results: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (url, version, results) VALUES (?, ?, ?)`,
		results.URL, results.Version, string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for name, overall := range AggregateScores(results) {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO scores (run_id, aggregation, overall) VALUES (?, ?, ?)`,
			runID, name, overall,
		); err != nil {
			return 0, fmt.Errorf("failed to save score summary: %w", err)
		}
	}

	return runID, nil
}

// RunSummary is the listing view of one stored run.
type RunSummary struct {
	// ID is the database row ID, usable with GetRun.
	ID int64

	// URL is the audited page address.
	URL string

	// Version is the audit pipeline version.
	Version string

	// Timestamp is when the run was saved.
	Timestamp time.Time

	// Scores maps aggregation names to their summary score in [0, 1].
	Scores map[string]float64
}

// ListRuns returns stored runs, newest first. An empty url lists runs for
// every URL.
func (s *Store) ListRuns(ctx context.Context, url string) ([]RunSummary, error) {
	query := `SELECT id, url, version, timestamp FROM runs ORDER BY timestamp DESC, id DESC`
	args := []any{}
	if url != "" {
		query = `SELECT id, url, version, timestamp FROM runs WHERE url = ? ORDER BY timestamp DESC, id DESC`
		args = append(args, url)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var sum RunSummary
		var timestamp string
		if err := rows.Scan(&sum.ID, &sum.URL, &sum.Version, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		sum.Timestamp = parseTimestamp(timestamp)
		sum.Scores = make(map[string]float64)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range summaries {
		if err := s.loadScores(ctx, &summaries[i]); err != nil {
			return nil, err
		}
	}
	return summaries, nil
}

// loadScores fills a summary's per-aggregation scores.
func (s *Store) loadScores(ctx context.Context, sum *RunSummary) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT aggregation, overall FROM scores WHERE run_id = ?`, sum.ID)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var overall float64
		if err := rows.Scan(&name, &overall); err != nil {
			return fmt.Errorf("failed to scan score: %w", err)
		}
		sum.Scores[name] = overall
	}
	return rows.Err()
}

// GetRun retrieves a stored run's full result tree by ID. A missing ID
// returns nil without error.
func (s *Store) GetRun(ctx context.Context, id int64) (*model.Results, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT results FROM runs WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var results model.Results
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, fmt.Errorf("failed to parse stored run: %w", err)
	}
	return &results, nil
}

// ListURLs returns the distinct audited URLs present in the store.
func (s *Store) ListURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT url FROM runs ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// timestampFormats are the layouts SQLite may hand back for DATETIME
// columns depending on how the value was written.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// parseTimestamp parses an SQLite timestamp string, returning the zero
// time when no layout matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
