// Package store keeps a SQLite log of the sessions finished during this run.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/verte-zerg/tuidrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private database that disappears with the process.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for session data.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenMemory opens a run-scoped in-memory store.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			app TEXT NOT NULL,
			category TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			total INTEGER NOT NULL,
			correct INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_misses (
			session_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			prompt TEXT NOT NULL,
			expected TEXT NOT NULL,
			given TEXT NOT NULL,
			PRIMARY KEY (session_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_app ON sessions(app);`,
		`CREATE INDEX IF NOT EXISTS idx_session_misses_prompt ON session_misses(prompt);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a finished session and its misses.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord, misses []model.Miss) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, app, category, started_at, ended_at, total, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.App,
		rec.Category,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Total,
		rec.Correct,
	); err != nil {
		return err
	}

	if len(misses) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO session_misses (session_id, position, prompt, expected, given)
			 VALUES (?, ?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, m := range misses {
			if _, err = stmt.ExecContext(ctx, rec.ID, i, m.Item.Prompt, m.Expected, m.Given); err != nil {
				return err
			}
		}
	}

	err = tx.Commit()
	return err
}

// ListSessions returns finished sessions for app in completion order.
// An empty app lists every session.
func (s *Store) ListSessions(ctx context.Context, app string) ([]model.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, app, category, started_at, ended_at, total, correct
		 FROM sessions
		 WHERE (? = '' OR app = ?)
		 ORDER BY seq ASC`, app, app)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &rec.App, &rec.Category, &startedAt, &endedAt, &rec.Total, &rec.Correct); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// TopMisses returns the most frequently missed prompts for app.
func (s *Store) TopMisses(ctx context.Context, app string, limit int) ([]model.MissAggregate, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.prompt, m.expected, COUNT(*) AS misses
		 FROM session_misses m
		 JOIN sessions s ON s.id = m.session_id
		 WHERE (? = '' OR s.app = ?)
		 GROUP BY m.prompt, m.expected
		 ORDER BY misses DESC, m.prompt ASC
		 LIMIT ?`, app, app, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.MissAggregate
	for rows.Next() {
		var agg model.MissAggregate
		if err := rows.Scan(&agg.Prompt, &agg.Expected, &agg.Count); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
