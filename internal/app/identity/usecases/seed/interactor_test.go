package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/app/identity/repo"
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/seed"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/password"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

func init() {
	password.Cost = bcrypt.MinCost
}

func count(t *testing.T, db *sqldb.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestEnsureBootstrapState_IsIdempotent(t *testing.T) {
	db := sqldbtest.New(t)
	logger, hook := test.NewNullLogger()
	provider := repo.NewSQLProvider(db)
	it := seed.NewInteractor(provider, clock.NewFake(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)), logger, "", "")
	ctx := context.Background()

	require.NoError(t, it.EnsureBootstrapState(ctx))
	firstRunLogs := len(hook.AllEntries())
	assert.Equal(t, 5, firstRunLogs, "three roles, one principal, one assignment")

	require.NoError(t, it.EnsureBootstrapState(ctx))
	assert.Len(t, hook.AllEntries(), firstRunLogs, "second run writes nothing")

	assert.Equal(t, 3, count(t, db, "roles"))
	assert.Equal(t, 1, count(t, db, "principals"))
	assert.Equal(t, 1, count(t, db, "principal_roles"))

	admin, err := provider.FindPrincipalByIdentifier(ctx, seed.DefaultAdminIdentifier)
	require.NoError(t, err)
	assert.True(t, password.Check(admin.SecretHash, seed.DefaultAdminSecret))

	roles, err := provider.PrincipalRoles(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleAdmin}, roles)
}

func TestEnsureBootstrapState_CompletesPartialState(t *testing.T) {
	db := sqldbtest.New(t)
	logger, _ := test.NewNullLogger()
	provider := repo.NewSQLProvider(db)
	ctx := context.Background()

	// Admin role and principal exist but the assignment was never made.
	require.NoError(t, provider.CreateRole(ctx, domain.RoleAdmin))
	hash, err := password.Hash("kept-secret")
	require.NoError(t, err)
	p, err := domain.NewPrincipal("ops@example.com", hash, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, provider.CreatePrincipal(ctx, p))

	it := seed.NewInteractor(provider, clock.RealClock{}, logger, "ops@example.com", "ignored")
	require.NoError(t, it.EnsureBootstrapState(ctx))

	assert.Equal(t, 3, count(t, db, "roles"))
	assert.Equal(t, 1, count(t, db, "principals"))
	has, err := provider.PrincipalHasRole(ctx, p.ID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, has)

	stored, err := provider.FindPrincipalByIdentifier(ctx, "ops@example.com")
	require.NoError(t, err)
	assert.True(t, password.Check(stored.SecretHash, "kept-secret"), "existing secret is not reset")
}
