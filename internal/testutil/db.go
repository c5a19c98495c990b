package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dvmorais/daily-diet-api/internal/config"
	"github.com/dvmorais/daily-diet-api/internal/db"
)

// NewSQLiteDB opens a fresh in-memory database with the real schema applied.
// The single connection is pinned open so the memory database survives for
// the whole test.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	d, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	d.SetMaxOpenConns(1)
	d.SetMaxIdleConns(1)

	_, err = d.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	require.NoError(t, db.Migrate(d, config.Config{DatabaseClient: config.ClientSQLite}))

	t.Cleanup(func() { _ = d.Close() })
	return d
}
