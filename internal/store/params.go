package store

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// ParamChapter is the single key the navigator persists: the current chapter
// title, or absent when viewing the intro.
const ParamChapter = "chapter"

// Params is the persisted key/value state the navigator derives its current
// chapter from. Deleting a key is the "set to null" of the original contract.
type Params interface {
	Get() (map[string]string, error)
	Set(key, value string) error
	Delete(key string) error
}

// SQLiteParams stores params in the workspace SQLite db.
type SQLiteParams struct {
	store Store
}

func (s Store) Params() *SQLiteParams {
	return &SQLiteParams{store: s}
}

func (p *SQLiteParams) open(ctx context.Context) (*sql.DB, error) {
	if err := p.store.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", p.store.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database is
	// locked" flakiness when the CLI and TUI touch the same workspace.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pr := range pragmas {
		if _, err := db.ExecContext(ctx, pr); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS params (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (p *SQLiteParams) Get() (map[string]string, error) {
	ctx := context.Background()
	db, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT k, v FROM params`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (p *SQLiteParams) Set(key, value string) error {
	key = strings.TrimSpace(key)
	ctx := context.Background()
	db, err := p.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO params(k, v) VALUES(?, ?)`, key, value)
	return err
}

func (p *SQLiteParams) Delete(key string) error {
	key = strings.TrimSpace(key)
	ctx := context.Background()
	db, err := p.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM params WHERE k = ?`, key)
	return err
}

// MemParams is an in-memory Params, used by tests and one-shot CLI commands
// that don't want to touch the workspace db.
type MemParams map[string]string

func (m MemParams) Get() (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

func (m MemParams) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MemParams) Delete(key string) error {
	delete(m, key)
	return nil
}
