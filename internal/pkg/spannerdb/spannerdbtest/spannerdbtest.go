// Package spannerdbtest creates throwaway databases on the Spanner emulator.
package spannerdbtest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/pkg/spannerdb"
	"github.com/murkotick/catalog-admin/migrations"
)

// New returns a client for a fresh, migrated database. The test is skipped
// when SPANNER_EMULATOR_HOST is not set.
func New(t testing.TB) *spanner.Client {
	t.Helper()
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	name := spannerdb.Name{
		Project:  env("SPANNER_PROJECT_ID", "test-project"),
		Instance: env("SPANNER_INSTANCE_ID", "emulator-instance"),
		// Unique per test to avoid id collisions.
		Database: "t_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:26],
	}

	admin, err := spannerdb.NewAdmin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	require.NoError(t, admin.EnsureInstance(ctx, name))
	require.NoError(t, admin.EnsureDatabase(ctx, name))

	stmts, err := migrations.Statements("spanner")
	require.NoError(t, err)
	_, err = admin.ApplySchema(ctx, name, stmts)
	require.NoError(t, err)

	client, err := spanner.NewClient(ctx, name.String())
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
		dropCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_ = admin.DropDatabase(dropCtx, name)
	})
	return client
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
