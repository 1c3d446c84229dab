// Package storage provides an in-memory SQLite journal of quiz answers for
// the running session. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies. Nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mathbreak/internal/quiz"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection for the answer journal.
type Store struct {
	db *sql.DB
}

// Run describes one playthrough.
type Run struct {
	ID         string
	Seed       int64
	Difficulty string
	Score      int
	Level      int
	StartedAt  time.Time
	Finished   bool // Played until game over
	Aborted    bool // Quit before game over
}

// AnswerEntry is one resolved question.
type AnswerEntry struct {
	ID        int64
	RunID     string
	Level     int
	Question  string
	Operator  string
	Expected  int
	Given     string
	Outcome   string
	ElapsedMs int
	CreatedAt time.Time
}

// NewAnswerEntry converts a resolved quiz session into a journal entry.
func NewAnswerEntry(runID string, level int, res quiz.Result) AnswerEntry {
	return AnswerEntry{
		RunID:     runID,
		Level:     level,
		Question:  res.Challenge.Question(),
		Operator:  res.Challenge.Op.String(),
		Expected:  res.Challenge.Result,
		Given:     res.Given,
		Outcome:   res.Outcome.String(),
		ElapsedMs: res.ElapsedMillis(),
	}
}

// Open opens a SQLite database with the given DSN and runs migrations.
// Use MemoryDSN for the session journal.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			seed INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			finished INTEGER NOT NULL DEFAULT 0,
			aborted INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			level INTEGER NOT NULL,
			question TEXT NOT NULL,
			operator TEXT NOT NULL,
			expected INTEGER NOT NULL,
			given TEXT NOT NULL,
			outcome TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_answers_run_id ON answers(run_id);
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

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// StartRun records a new playthrough and returns its ID.
func (s *Store) StartRun(seed int64, difficulty string) (string, error) {
	id := NewRunID()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, seed, difficulty) VALUES (?, ?, ?)",
		id, seed, difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start run: %w", err)
	}
	return id, nil
}

// FinishRun stores the final score and level of a playthrough. An aborted
// run is marked as such and never counts as finished.
func (s *Store) FinishRun(runID string, score, level int, aborted bool) error {
	finished, quit := 1, 0
	if aborted {
		finished, quit = 0, 1
	}
	res, err := s.db.Exec(
		"UPDATE runs SET score = ?, level = ?, finished = ?, aborted = ? WHERE id = ?",
		score, level, finished, quit, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: unknown run %s", runID)
	}
	return nil
}

// GetRun retrieves a playthrough by ID. Returns nil if it does not exist.
func (s *Store) GetRun(runID string) (*Run, error) {
	var r Run
	var finished, aborted int
	var startedAt any

	err := s.db.QueryRow(
		`SELECT id, seed, difficulty, score, level, finished, aborted, started_at
		 FROM runs WHERE id = ?`,
		runID,
	).Scan(&r.ID, &r.Seed, &r.Difficulty, &r.Score, &r.Level, &finished, &aborted, &startedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.Finished = finished == 1
	r.Aborted = aborted == 1
	r.StartedAt = parseTime(startedAt)
	return &r, nil
}

// SaveAnswer records a resolved question.
// Returns the ID of the inserted record.
func (s *Store) SaveAnswer(e AnswerEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO answers (run_id, level, question, operator, expected, given, outcome, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Level, e.Question, e.Operator, e.Expected, e.Given, e.Outcome, e.ElapsedMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save answer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAnswers retrieves the last N answers of a run, newest first.
func (s *Store) RecentAnswers(runID string, limit int) ([]AnswerEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level, question, operator, expected, given, outcome, elapsed_ms, created_at
		 FROM answers
		 WHERE run_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query answers: %w", err)
	}
	defer rows.Close()

	var entries []AnswerEntry
	for rows.Next() {
		var e AnswerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Level, &e.Question, &e.Operator,
			&e.Expected, &e.Given, &e.Outcome, &e.ElapsedMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunStats contains aggregated answer statistics for a run.
type RunStats struct {
	RunID        string
	Answers      int
	Correct      int
	Incorrect    int
	TimedOut     int
	AvgElapsedMs float64
}

// Accuracy returns the share of correct answers in [0, 1].
func (r RunStats) Accuracy() float64 {
	if r.Answers == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answers)
}

// GetRunStats retrieves aggregated statistics for a run.
func (s *Store) GetRunStats(runID string) (*RunStats, error) {
	stats := &RunStats{RunID: runID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(AVG(elapsed_ms), 0)
		 FROM answers WHERE run_id = ?`,
		quiz.Correct.String(), quiz.Incorrect.String(), quiz.TimedOut.String(), runID,
	).Scan(&stats.Answers, &stats.Correct, &stats.Incorrect, &stats.TimedOut, &stats.AvgElapsedMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	return stats, nil
}

// OperatorStats contains answer statistics for one operator.
type OperatorStats struct {
	Operator     string
	Answers      int
	Correct      int
	AvgElapsedMs float64
}

// GetOperatorStats retrieves per-operator statistics for a run, ordered by
// operator name.
func (s *Store) GetOperatorStats(runID string) ([]OperatorStats, error) {
	rows, err := s.db.Query(
		`SELECT operator, COUNT(*), SUM(outcome = ?), AVG(elapsed_ms)
		 FROM answers
		 WHERE run_id = ?
		 GROUP BY operator
		 ORDER BY operator`,
		quiz.Correct.String(), runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get operator stats: %w", err)
	}
	defer rows.Close()

	var stats []OperatorStats
	for rows.Next() {
		var o OperatorStats
		if err := rows.Scan(&o.Operator, &o.Answers, &o.Correct, &o.AvgElapsedMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
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
