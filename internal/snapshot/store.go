// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot writes derived artifacts of a session: a SQLite copy of
// the cleaned Dataset and a YAML or JSON report of its aggregates. Nothing
// here is ever read back into a Dataset.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

const dbFile = "papers.db"

// ErrMismatch reports that the stored records disagree with the in-memory
// aggregates they were written from.
var ErrMismatch = errors.New("snapshot does not match dataset")

// Store manages the snapshot SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates dir/papers.db and its schema.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	path := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT NOT NULL,
			publish_time TEXT,
			year INTEGER,
			authors TEXT,
			journal TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_year ON records(year)`,
		`CREATE INDEX IF NOT EXISTS idx_records_journal ON records(journal)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Write replaces the stored records with ds in a single transaction.
// Record positions follow dataset order starting at 0.
func (s *Store) Write(ctx context.Context, ds types.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (position, title, abstract, publish_time, year, authors, journal)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range ds {
		var publishTime, year any
		if r.PublishTime != nil {
			publishTime = r.PublishTime.Format(time.RFC3339)
		}
		if r.Year != nil {
			year = *r.Year
		}
		if _, err := stmt.ExecContext(ctx,
			i, r.Title, r.Abstract, publishTime, year, r.Authors, r.Journal,
		); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// PapersPerYear answers the per-year aggregation from the stored records.
func (s *Store) PapersPerYear(ctx context.Context) ([]types.YearCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT year, count(*) FROM records
		 WHERE year IS NOT NULL
		 GROUP BY year ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("querying papers per year: %w", err)
	}
	defer rows.Close()

	out := []types.YearCount{}
	for rows.Next() {
		var yc types.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, yc)
	}
	return out, rows.Err()
}

// TopJournals answers the top-k journal aggregation from the stored
// records. Ties are ordered by the first position at which each journal
// appears.
func (s *Store) TopJournals(ctx context.Context, k int) ([]types.JournalCount, error) {
	if k <= 0 {
		k = types.DefaultTopJournals
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT coalesce(journal, ''), count(*) AS n, min(position) AS first
		 FROM records
		 GROUP BY coalesce(journal, '')
		 ORDER BY n DESC, first ASC
		 LIMIT ?`, k)
	if err != nil {
		return nil, fmt.Errorf("querying top journals: %w", err)
	}
	defer rows.Close()

	out := []types.JournalCount{}
	for rows.Next() {
		var (
			jc    types.JournalCount
			first int
		)
		if err := rows.Scan(&jc.Journal, &jc.Count, &first); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, jc)
	}
	return out, rows.Err()
}

// Verify cross-checks the stored records against src: the record count,
// the per-year series, and the top-k journals must all agree.
func (s *Store) Verify(ctx context.Context, src Source, k int) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n != src.Total() {
		return fmt.Errorf("%w: %d stored records, dataset has %d", ErrMismatch, n, src.Total())
	}

	years, err := s.PapersPerYear(ctx)
	if err != nil {
		return err
	}
	if !slices.Equal(years, src.PapersPerYear()) {
		return fmt.Errorf("%w: papers per year differ", ErrMismatch)
	}

	journals, err := s.TopJournals(ctx, k)
	if err != nil {
		return err
	}
	if !slices.Equal(journals, src.TopJournals(k)) {
		return fmt.Errorf("%w: top %d journals differ", ErrMismatch, k)
	}
	return nil
}
