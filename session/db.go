package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Nagendra14319/book1432/api"
)

// db persists the single saved session across process restarts.
type db struct {
	sql *sql.DB
}

// openDB opens (or creates) the SQLite database at path and applies schema
// migrations.
func openDB(path string) (*db, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &db{sql: conn}, nil
}

func (d *db) close() error { return d.sql.Close() }

const schemaVersion = 1

func applyMigrations(conn *sql.DB) error {
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = conn.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Single-row table: the client holds at most one session.
	const sessionTable = `CREATE TABLE IF NOT EXISTS session (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        user_id TEXT NOT NULL,
        username TEXT NOT NULL,
        email TEXT NOT NULL,
        token TEXT NOT NULL,
        saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
    );`
	if _, err := tx.Exec(sessionTable); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// save writes the session, replacing any previous one.
func (d *db) save(user *api.User, token string) error {
	_, err := d.sql.Exec(`INSERT INTO session(id,user_id,username,email,token,saved_at)
        VALUES(1,?,?,?,?,CURRENT_TIMESTAMP)
        ON CONFLICT(id) DO UPDATE SET
            user_id=excluded.user_id, username=excluded.username,
            email=excluded.email, token=excluded.token, saved_at=excluded.saved_at`,
		user.ID, user.Username, user.Email, token)
	return err
}

// load reads the saved session. A missing row yields (nil, "", nil).
func (d *db) load() (*api.User, string, error) {
	var u api.User
	var token string
	err := d.sql.QueryRow(`SELECT user_id,username,email,token FROM session WHERE id=1`).
		Scan(&u.ID, &u.Username, &u.Email, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// clear removes the saved session, if any.
func (d *db) clear() error {
	_, err := d.sql.Exec(`DELETE FROM session WHERE id=1`)
	return err
}
