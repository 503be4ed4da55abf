package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/reframe/internal/db"
)

// NewTestDB opens a migrated in-memory store, closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// FaultyUoW runs the real SQLite transaction but fails the FailAtWrite-th
// write inside it with Err. Reads are never counted. It lets tests check that
// a closer-history write aborted halfway leaves the previous history intact.
type FaultyUoW struct {
	DB          *sql.DB
	FailAtWrite int32
	Err         error

	writes atomic.Int32
}

// Writes reports how many writes the last transactions attempted in total,
// including the failed one.
func (u *FaultyUoW) Writes() int { return int(u.writes.Load()) }

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, uow: u})
	})
}

type faultyTx struct {
	db.DBTX
	uow *FaultyUoW
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.writes.Add(1) == f.uow.FailAtWrite {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
