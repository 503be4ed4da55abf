package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/reframe/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, database *sql.DB) []string {
	t.Helper()
	rows, err := database.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	names := tableNames(t, database)
	assert.Contains(t, names, "sessions")
	assert.Contains(t, names, "closer_history")
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_HistoryCascadesWithSession(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO sessions (id, history_limit, created_at, updated_at) VALUES ('s', 5, 'x', 'x')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO closer_history (id, session_id, seq, line, created_at) VALUES ('h1', 's', 1, 'line', 'x')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM sessions WHERE id = 's'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM closer_history`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_RejectsHistoryForUnknownSession(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO closer_history (id, session_id, seq, line, created_at) VALUES ('h1', 'missing', 1, 'line', 'x')`)
	assert.Error(t, err, "foreign key should reject orphan history")
}

func TestOpenDB_FileDatabaseCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reframe.db")

	database, err := db.OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	assert.FileExists(t, path)
	assert.Contains(t, tableNames(t, database), "closer_history")
}
