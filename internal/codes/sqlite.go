// internal/codes/sqlite.go
//
// SQLite storage for named code sets.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded schema once (recorded in _migrations).
//   - Saving and loading code sets, keeping code order intact.
//
// Only code lists live here. Game history is never written.

package codes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/assets"
)

// OpenDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/codes.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded schema inside a transaction unless it has
// already been recorded in _migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	name := assets.SchemaFile
	var done int
	err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
	if err == nil {
		log.Debug().Str("migration", name).Msg("already applied")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("query _migrations: %w", err)
	}

	schema, err := assets.FS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(schema)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	log.Info().Str("migration", name).Msg("applied")
	return nil
}

// SaveSet validates l and stores it under name, replacing any existing set
// with that name.
func SaveSet(ctx context.Context, db *sql.DB, name string, l *List) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("codes: set name must not be empty")
	}
	if err := l.Validate(); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM code_sets WHERE name=?`, name); err != nil {
		return fmt.Errorf("replace set %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO code_sets (name, colors, pegs, created_at) VALUES (?,?,?,?)`,
		name, l.Colors, l.Pegs, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("insert set %q: %w", name, err)
	}
	for i, c := range l.Codes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO codes (set_name, position, pegs) VALUES (?,?,?)`,
			name, i, formatPegs(c),
		); err != nil {
			return fmt.Errorf("insert code %d of %q: %w", i+1, name, err)
		}
	}
	return tx.Commit()
}

// LoadSet fetches a stored set in its original order.
// Returns ErrSetNotFound if no set has that name.
func LoadSet(ctx context.Context, db *sql.DB, name string) (*List, error) {
	var l List
	err := db.QueryRowContext(ctx, `SELECT colors, pegs FROM code_sets WHERE name=?`, name).
		Scan(&l.Colors, &l.Pegs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT pegs FROM codes WHERE set_name=? ORDER BY position ASC`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		c, err := parseInts(raw)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", name, err)
		}
		l.Codes = append(l.Codes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("set %q: %w", name, err)
	}
	return &l, nil
}

// formatPegs renders a code as space-separated integers.
func formatPegs(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
