// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists one record per conversion run in a SQLite
// database kept under the output root. Recording is best-effort from the
// caller's point of view: a write failure degrades to a warning and never
// fails the conversion itself.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdf2img/pkg/types"
)

// DBFile is the database file name under the output root.
const DBFile = "history.db"

// Store manages the conversion history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at root/history.db,
// creating the output root and the schema when missing.
func NewStore(root string) (*Store, error) {
	return NewStoreAt(filepath.Join(root, DBFile))
}

// NewStoreAt opens or creates the history database at an explicit file
// path, for configurations that move it out of the output root.
func NewStoreAt(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			source_path TEXT NOT NULL,
			output_dir TEXT,
			engine TEXT NOT NULL,
			dpi INTEGER NOT NULL,
			format TEXT NOT NULL,
			quality INTEGER,
			pages INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_started_at ON conversions(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one run record and returns its assigned ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions
			(started_at, source_path, output_dir, engine, dpi, format, quality, pages, status, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.SourcePath,
		rec.OutputDir,
		string(rec.Engine),
		rec.DPI,
		string(rec.Format),
		rec.Quality,
		rec.Pages,
		string(rec.Status),
		rec.Error,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run record: %w", err)
	}
	return res.LastInsertId()
}

// List returns run records, newest first. limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	query := `SELECT id, started_at, source_path, output_dir, engine, dpi, format, quality, pages, status, error, duration_ms
		FROM conversions ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var recs []types.RunRecord
	for rows.Next() {
		var (
			rec        types.RunRecord
			startedAt  string
			engine     string
			format     string
			status     string
			durationMS int64
		)
		if err := rows.Scan(&rec.ID, &startedAt, &rec.SourcePath, &rec.OutputDir,
			&engine, &rec.DPI, &format, &rec.Quality, &rec.Pages,
			&status, &rec.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
		}
		rec.StartedAt = ts
		rec.Engine = types.Engine(engine)
		rec.Format = types.Format(format)
		rec.Status = types.RunStatus(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Count returns the number of stored runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}
