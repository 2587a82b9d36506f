// Package storage persists high scores and run history.
// The history database uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/batsnake/internal/config"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID         string // UUID, generated on save when empty
	Edition    string
	Difficulty string
	Hero       string
	Score      int
	Length     int
	Ticks      int64
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}
	dbPath = config.ExpandPath(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// One writer at a time; SSH sessions share this handle
	db.SetMaxOpenConns(1)

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			edition TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			hero TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_edition ON runs(edition);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(edition, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, edition, difficulty, hero, score, length, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Edition, run.Difficulty, run.Hero, run.Score, run.Length, run.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, edition, difficulty, hero, score, length, ticks, created_at`

// TopRuns retrieves the top N runs for the given edition.
// Results are ordered by score descending.
func (s *Store) TopRuns(edition string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE edition = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		edition, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across editions.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its ID. Returns nil when absent.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Edition, &r.Difficulty, &r.Hero, &r.Score, &r.Length, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestRun returns the highest run score for the given edition.
// Returns 0 if no runs exist.
func (s *Store) BestRun(edition string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE edition = ?",
		edition,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given edition.
func (s *Store) ClearRuns(edition string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE edition = ?", edition)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// EditionStats contains aggregated statistics for an edition.
type EditionStats struct {
	Edition    string
	RunsCount  int
	BestScore  int
	AvgScore   float64
	LongestLen int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for every edition that has runs.
func (s *Store) Stats() (map[string]*EditionStats, error) {
	rows, err := s.db.Query(
		`SELECT edition, COUNT(*), MAX(score), AVG(score), MAX(length), MAX(created_at)
		 FROM runs
		 GROUP BY edition`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*EditionStats)
	for rows.Next() {
		var st EditionStats
		var lastPlayed any
		if err := rows.Scan(&st.Edition, &st.RunsCount, &st.BestScore, &st.AvgScore, &st.LongestLen, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Edition] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ReadHighScore returns the stored high score for key, or 0.
func (s *Store) ReadHighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return max(0, score), nil
}

// WriteHighScore raises the stored high score for key to score. A lower
// score leaves the stored one in place.
func (s *Store) WriteHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// HighScoreTable adapts the high_scores table to core.HighScoreStore.
type HighScoreTable struct {
	store  *Store
	logger *log.Logger
}

// HighScores returns the table as a best-effort high score store.
// Swallowed errors go to logger at debug level; logger may be nil.
func (s *Store) HighScores(logger *log.Logger) *HighScoreTable {
	return &HighScoreTable{store: s, logger: logger}
}

// Read returns the stored score, or 0 on any failure.
func (t *HighScoreTable) Read(key string) int {
	score, err := t.store.ReadHighScore(key)
	if err != nil {
		t.debug("high score not read", key, err)
		return 0
	}
	return score
}

// Write raises the stored score, ignoring failures.
func (t *HighScoreTable) Write(key string, score int) {
	if err := t.store.WriteHighScore(key, score); err != nil {
		t.debug("high score not saved", key, err)
	}
}

func (t *HighScoreTable) debug(msg, key string, err error) {
	if t.logger != nil {
		t.logger.Debug(msg, "key", key, "error", err)
	}
}
