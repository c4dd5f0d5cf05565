package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "file:catalog.db", cfg.DatabaseURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin@example.com", cfg.AdminIdentifier)
	assert.Equal(t, "Admin@123", cfg.AdminSecret)
	assert.False(t, cfg.AuthDeleteRequiresAdmin)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog?sslmode=disable")
	t.Setenv("AUTH_DELETE_REQUIRES_ADMIN", "true")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.True(t, cfg.AuthDeleteRequiresAdmin)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestFromEnv_Rejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := FromEnv()
	assert.Error(t, err, "secret is required")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "mysql")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("LOG_FORMAT", "xml")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "LOG_FORMAT")
}
