package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/auth"
	"github.com/murkotick/catalog-admin/internal/bootstrap"
	"github.com/murkotick/catalog-admin/internal/config"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/password"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreDriver:     config.DriverSQLite,
		DatabaseURL:     "file:" + filepath.Join(t.TempDir(), "catalog.db"),
		JWTSecret:       "bootstrap-test",
		TokenTTL:        time.Hour,
		AdminIdentifier: "admin@example.com",
		AdminSecret:     "Admin@123",
		LogFormat:       "json",
	}
}

func TestMigrateSeedAndLogin(t *testing.T) {
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = bcrypt.DefaultCost })

	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	cfg := sqliteConfig(t)

	require.NoError(t, bootstrap.Migrate(ctx, cfg, logger))
	require.NoError(t, bootstrap.Migrate(ctx, cfg, logger))
	assert.Equal(t, "Schema applied", hook.LastEntry().Message)

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	require.NoError(t, err)
	defer store.Close()

	a, err := bootstrap.NewApp(cfg, store, clock.RealClock{}, logger)
	require.NoError(t, err)
	require.NoError(t, a.Seed.EnsureBootstrapState(ctx))

	res, err := a.Login.Execute(ctx, login.Request{Identifier: cfg.AdminIdentifier, Secret: cfg.AdminSecret})
	require.NoError(t, err)

	p, err := a.Tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.NoError(t, a.Gate.Authorize(auth.OpCreateProduct, p))
	assert.NoError(t, a.Gate.Authorize(auth.OpDeleteProduct, nil))

	cat, err := store.Writer.CreateCategory(ctx, "Garden")
	require.NoError(t, err)
	got, err := store.ReadModel.GetCategory(ctx, cat)
	require.NoError(t, err)
	assert.Equal(t, "Garden", got.Name)
}

func TestNewApp_DeleteRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	cfg := sqliteConfig(t)
	cfg.AuthDeleteRequiresAdmin = true

	require.NoError(t, bootstrap.Migrate(ctx, cfg, logger))
	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	require.NoError(t, err)
	defer store.Close()

	a, err := bootstrap.NewApp(cfg, store, clock.RealClock{}, logger)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Gate.Authorize(auth.OpDeleteProduct, nil), auth.ErrUnauthenticated)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := bootstrap.OpenStore(context.Background(), &config.Config{StoreDriver: "mysql"}, logger)
	assert.Error(t, err)
}
