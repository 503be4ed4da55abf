package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/reframe/internal/db"
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionRepo implements SessionRepo on the sessions and closer_history
// tables. Update runs inside a write transaction, so concurrent updates to the
// same session (even from separate processes) are serialized by SQLite.
type SQLiteSessionRepo struct {
	db    *sql.DB
	uow   db.UnitOfWork
	limit int
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo keeping at most limit
// closer lines per session.
func NewSQLiteSessionRepo(database *sql.DB, limit int) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{
		db:    database,
		uow:   db.NewSQLiteUnitOfWork(database),
		limit: historyLimit(limit),
	}
}

// WithUnitOfWork replaces the transaction runner. Tests use it to inject
// failures part way through an update.
func (r *SQLiteSessionRepo) WithUnitOfWork(uow db.UnitOfWork) *SQLiteSessionRepo {
	r.uow = uow
	return r
}

func (r *SQLiteSessionRepo) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	lines, err := r.loadLines(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return newState(id, r.limit, lines), nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, id string, fn func(state *domain.SessionState) error) error {
	if err := validateSessionID(id); err != nil {
		return err
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		now := nowUTC()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (id, history_limit, created_at, updated_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
			id, r.limit, now, now)
		if err != nil {
			return fmt.Errorf("upserting session: %w", err)
		}

		lines, err := r.loadLines(ctx, tx, id)
		if err != nil {
			return err
		}
		state := newState(id, r.limit, lines)
		if err := fn(state); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM closer_history WHERE session_id = ?`, id); err != nil {
			return fmt.Errorf("clearing closer history: %w", err)
		}
		for i, line := range persistedLines(state, r.limit) {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO closer_history (id, session_id, seq, line, created_at) VALUES (?, ?, ?, ?, ?)`,
				uuid.New().String(), id, i+1, line, now)
			if err != nil {
				return fmt.Errorf("inserting closer history: %w", err)
			}
		}
		return nil
	})
}

func (r *SQLiteSessionRepo) Clear(ctx context.Context, id string) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM closer_history WHERE session_id = ?`, id); err != nil {
			return fmt.Errorf("clearing closer history: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("session %q: %w", id, ErrNotFound)
		}
		return nil
	})
}

// List returns session ids, most recently updated first.
func (r *SQLiteSessionRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM sessions ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning session id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteSessionRepo) loadLines(ctx context.Context, q db.DBTX, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT line FROM closer_history WHERE session_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("loading closer history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scanning closer history: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
