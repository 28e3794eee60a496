// results project store.go
// Yearly herd records kept in an sqlite database
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blgolden/flockDemog/flock"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

type Run_t struct {
	Id        uuid.UUID
	Seed      int64
	User      string
	Comment   string
	StartedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// database that is lost on Close.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating tables in %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			run_by TEXT NOT NULL,
			comment TEXT NOT NULL,
			started_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS herd_years (
			run_id TEXT NOT NULL REFERENCES runs(id),
			herd TEXT NOT NULL,
			year INTEGER NOT NULL,
			mothers INTEGER NOT NULL,
			births INTEGER NOT NULL,
			deaths INTEGER NOT NULL,
			culled INTEGER NOT NULL,
			sold INTEGER NOT NULL,
			purchased INTEGER NOT NULL,
			males INTEGER NOT NULL,
			females INTEGER NOT NULL,
			mean_age INTEGER NOT NULL,
			PRIMARY KEY (run_id, herd, year)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NewRun starts a run record with a fresh id
func NewRun(seed int64, user, comment string) Run_t {
	return Run_t{Id: uuid.New(), Seed: seed, User: user, Comment: comment, StartedAt: time.Now().UTC()}
}

// InsertRun stores run and its records in one transaction
func (s *Store) InsertRun(ctx context.Context, run Run_t, records []flock.YearRecord_t) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, seed, run_by, comment, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.Id.String(), run.Seed, run.User, run.Comment, run.StartedAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("inserting run %s: %w", run.Id, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO herd_years (run_id, herd, year, mothers, births, deaths, culled, sold, purchased, males, females, mean_age)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err = stmt.ExecContext(ctx, run.Id.String(), r.Herd, r.Year, r.Mothers, r.Births, r.Deaths,
			r.Culled, r.Sold, r.Purchased, r.Males, r.Females, r.MeanAge); err != nil {
			return fmt.Errorf("inserting %s year %d: %w", r.Herd, r.Year, err)
		}
	}
	return tx.Commit()
}

// Run returns the stored run with id
func (s *Store) Run(ctx context.Context, id uuid.UUID) (Run_t, error) {
	var (
		run     Run_t
		idText  string
		started string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, seed, run_by, comment, started_at FROM runs WHERE id = ?`, id.String(),
	).Scan(&idText, &run.Seed, &run.User, &run.Comment, &started)
	if err != nil {
		return run, fmt.Errorf("run %s: %w", id, err)
	}
	if run.Id, err = uuid.Parse(idText); err != nil {
		return run, err
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return run, err
	}
	return run, nil
}

// HerdYears returns the records of a run ordered by herd then year
func (s *Store) HerdYears(ctx context.Context, runID uuid.UUID) ([]flock.YearRecord_t, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT herd, year, mothers, births, deaths, culled, sold, purchased, males, females, mean_age
		 FROM herd_years WHERE run_id = ? ORDER BY herd, year`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []flock.YearRecord_t
	for rows.Next() {
		var r flock.YearRecord_t
		if err := rows.Scan(&r.Herd, &r.Year, &r.Mothers, &r.Births, &r.Deaths, &r.Culled,
			&r.Sold, &r.Purchased, &r.Males, &r.Females, &r.MeanAge); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
