// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxScores is the number of records the table keeps.
const MaxScores = 10

// DefaultPlayerName is recorded when a run has no player name.
const DefaultPlayerName = "Anonymous"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Record is a single high score entry.
type Record struct {
	ID                int64
	Score             int
	Level             int
	Difficulty        string
	Date              time.Time
	FormedMolecules   []string // Formulas in formation order
	ElementsCollected int
	PlayerName        string
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Prune and rank must observe the insert they follow.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			difficulty TEXT NOT NULL,
			player_name TEXT NOT NULL,
			elements_collected INTEGER NOT NULL DEFAULT 0,
			molecules TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC, id ASC);
		CREATE INDEX IF NOT EXISTS idx_high_scores_difficulty ON high_scores(difficulty);
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

// IsHighScore reports whether score would enter the table: either the table
// is not full or the score beats the lowest kept record.
func (s *Store) IsHighScore(score int) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM high_scores").Scan(&count); err != nil {
		return false, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	if count < MaxScores {
		return true, nil
	}

	var lowest int
	err := s.db.QueryRow(
		`SELECT score FROM high_scores ORDER BY score DESC, id ASC LIMIT 1 OFFSET ?`,
		MaxScores-1,
	).Scan(&lowest)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query lowest score: %w", err)
	}
	return score > lowest, nil
}

// AddScore stores r, prunes the table to the best MaxScores records and
// returns the 1-based rank of r, or 0 if it did not survive the prune.
// Equal scores rank in insertion order.
func (s *Store) AddScore(r Record) (int, error) {
	if r.PlayerName == "" {
		r.PlayerName = DefaultPlayerName
	}
	if r.Date.IsZero() {
		r.Date = s.now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec(
		`INSERT INTO high_scores
		 (score, level, difficulty, player_name, elements_collected, molecules, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Score, r.Level, r.Difficulty, r.PlayerName, r.ElementsCollected,
		strings.Join(r.FormedMolecules, "\n"), r.Date.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM high_scores WHERE id NOT IN (
			SELECT id FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		MaxScores,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune scores: %w", err)
	}

	var rank int
	err = tx.QueryRow(
		`SELECT COUNT(*) + 1 FROM high_scores
		 WHERE score > ? OR (score = ? AND id < ?)`,
		r.Score, r.Score, id,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}

	var kept int
	if err := tx.QueryRow("SELECT COUNT(*) FROM high_scores WHERE id = ?", id).Scan(&kept); err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	if kept == 0 {
		return 0, nil
	}
	return rank, nil
}

// ListScores returns the kept records, best first. A non-empty difficulty
// restricts the list to that tier.
func (s *Store) ListScores(difficulty string) ([]Record, error) {
	query := `SELECT id, score, level, difficulty, player_name, elements_collected, molecules, created_at
		 FROM high_scores`
	var args []any
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}
	query += " ORDER BY score DESC, id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var molecules string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.Difficulty, &r.PlayerName,
			&r.ElementsCollected, &molecules, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if molecules != "" {
			r.FormedMolecules = strings.Split(molecules, "\n")
		}
		r.Date = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Best returns the top record, optionally for one difficulty. The boolean
// is false when there is none.
func (s *Store) Best(difficulty string) (Record, bool, error) {
	records, err := s.ListScores(difficulty)
	if err != nil {
		return Record{}, false, err
	}
	if len(records) == 0 {
		return Record{}, false, nil
	}
	return records[0], true, nil
}

// Clear deletes every record.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string, depending on how the driver
// decoded the DATETIME column.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
