// Package store provides SQLite-based persistence for user profiles:
// credentials, score history, and login history. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// historyCap bounds both the score and login history per user; only the
// most recent entries are kept.
const historyCap = 20

// Sentinel errors for caller branching.
var (
	ErrUserExists     = errors.New("store: user already exists")
	ErrUserNotFound   = errors.New("store: user not found")
	ErrBadCredentials = errors.New("store: bad credentials")
)

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single score record, newest first in listings.
type ScoreEntry struct {
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("store: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration failed: %w", err)
	}

	return s, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_user ON scores(user_id, id DESC);

		CREATE TABLE IF NOT EXISTS logins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_logins_user ON logins(user_id, id DESC);
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

// userID looks up a username, returning ErrUserNotFound if absent.
func (s *Store) userID(username string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM users WHERE username = ?", username).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("store: cannot query user: %w", err)
	}
	return id, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Store) Register(username, password string) error {
	if username == "" {
		return fmt.Errorf("store: username must not be empty")
	}
	if password == "" {
		return fmt.Errorf("store: password must not be empty")
	}

	if _, err := s.userID(username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("store: cannot hash password: %w", err)
	}

	if _, err := s.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, hash,
	); err != nil {
		return fmt.Errorf("store: cannot create user: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair. Returns
// ErrBadCredentials for both unknown users and wrong passwords so the
// caller cannot distinguish which part failed.
func (s *Store) Authenticate(username, password string) error {
	var hash []byte
	err := s.db.QueryRow(
		"SELECT password_hash FROM users WHERE username = ?", username,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return ErrBadCredentials
	}
	if err != nil {
		return fmt.Errorf("store: cannot query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

// RecordLogin appends a login timestamp to the user's history, pruning
// beyond the history cap.
func (s *Store) RecordLogin(username string) error {
	id, err := s.userID(username)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("INSERT INTO logins (user_id) VALUES (?)", id); err != nil {
		return fmt.Errorf("store: cannot record login: %w", err)
	}
	return s.prune("logins", id)
}

// AddScore appends a score to the user's history, pruning beyond the
// history cap.
func (s *Store) AddScore(username string, score int) error {
	if score < 0 {
		return fmt.Errorf("store: score must be non-negative, got %d", score)
	}
	id, err := s.userID(username)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(
		"INSERT INTO scores (user_id, score) VALUES (?, ?)", id, score,
	); err != nil {
		return fmt.Errorf("store: cannot save score: %w", err)
	}
	return s.prune("scores", id)
}

// prune deletes all but the newest historyCap rows for a user in the
// given table. Insertion ids are monotonic, so id order is recency order.
func (s *Store) prune(table string, userID int64) error {
	//nolint:gosec // table is one of two compile-time constants
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE user_id = ? AND id NOT IN (
			SELECT id FROM %s WHERE user_id = ? ORDER BY id DESC LIMIT ?
		)`, table, table)
	if _, err := s.db.Exec(query, userID, userID, historyCap); err != nil {
		return fmt.Errorf("store: cannot prune %s: %w", table, err)
	}
	return nil
}

// Scores returns the user's score history, most recent first, capped at
// the history limit.
func (s *Store) Scores(username string) ([]ScoreEntry, error) {
	id, err := s.userID(username)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT score, created_at FROM scores
		 WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		id, historyCap,
	)
	if err != nil {
		return nil, fmt.Errorf("store: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("store: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: row iteration error: %w", err)
	}
	return entries, nil
}

// Logins returns the user's login history, most recent first, capped at
// the history limit.
func (s *Store) Logins(username string) ([]time.Time, error) {
	id, err := s.userID(username)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT created_at FROM logins
		 WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		id, historyCap,
	)
	if err != nil {
		return nil, fmt.Errorf("store: cannot query logins: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var createdAt any
		if err := rows.Scan(&createdAt); err != nil {
			return nil, fmt.Errorf("store: cannot scan row: %w", err)
		}
		times = append(times, parseTime(createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: row iteration error: %w", err)
	}
	return times, nil
}

// HighScore returns the user's best recorded score, 0 if none exist.
func (s *Store) HighScore(username string) (int, error) {
	id, err := s.userID(username)
	if err != nil {
		return 0, err
	}

	var score sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE user_id = ?", id,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("store: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
