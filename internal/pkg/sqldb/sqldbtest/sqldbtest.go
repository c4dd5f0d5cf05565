// Package sqldbtest opens migrated in-memory SQLite databases for tests.
package sqldbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// New returns a fresh, migrated in-memory database closed at test cleanup.
func New(t testing.TB) *sqldb.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqldb.Open(ctx, sqldb.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

// Category inserts a category row and returns its id.
func Category(t testing.TB, db *sqldb.DB, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		db.Rebind("INSERT INTO categories (name) VALUES (?) RETURNING category_id"), name).Scan(&id)
	require.NoError(t, err)
	return id
}
