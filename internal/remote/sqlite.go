package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps user documents in a local SQLite file. Useful for
// development and fully-offline use, where "remote" is just another process
// boundary away.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn and prepares the
// documents table.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS user_docs (
		uid TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create user_docs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load implements DocumentStore.
func (s *SQLiteStore) Load(ctx context.Context, uid string) (*UserDocument, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM user_docs WHERE uid = ?`, uid).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user document: %w", err)
	}

	doc, err := UnmarshalDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal user document: %w", err)
	}
	return doc, nil
}

// Save implements DocumentStore. The read-modify-write runs in one
// transaction so concurrent saves cannot interleave field merges.
func (s *SQLiteStore) Save(ctx context.Context, uid string, doc *UserDocument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	var existing []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM user_docs WHERE uid = ?`, uid).Scan(&existing)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read existing document: %w", err)
	}

	merged, err := mergeInto(existing, doc)
	if err != nil {
		return fmt.Errorf("merge document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_docs (uid, doc) VALUES (?, ?)
		 ON CONFLICT(uid) DO UPDATE SET doc = excluded.doc`,
		uid, string(merged))
	if err != nil {
		return fmt.Errorf("save user document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultSQLitePath resolves the database file path in priority order:
// 1. SKATETRACK_DB environment variable
// 2. $XDG_DATA_HOME/skatetrack/skatetrack.db
// 3. ~/.local/share/skatetrack/skatetrack.db
func DefaultSQLitePath() (string, error) {
	if p := os.Getenv("SKATETRACK_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "skatetrack", "skatetrack.db")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
