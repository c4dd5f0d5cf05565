package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

func TestSQLProvider_Roundtrip(t *testing.T) {
	p := NewSQLProvider(sqldbtest.New(t))
	ctx := context.Background()

	ok, err := p.RoleExists(ctx, domain.RoleUser)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.CreateRole(ctx, domain.RoleUser))
	assert.ErrorIs(t, p.CreateRole(ctx, domain.RoleUser), domain.ErrAlreadyExists)

	ok, err = p.RoleExists(ctx, domain.RoleUser)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.FindPrincipalByIdentifier(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)

	created := time.Date(2025, 4, 4, 4, 4, 4, 0, time.UTC)
	pr, err := domain.NewPrincipal("someone@example.com", "hash", created)
	require.NoError(t, err)
	require.NoError(t, p.CreatePrincipal(ctx, pr))

	dup, err := domain.NewPrincipal("someone@example.com", "hash2", created)
	require.NoError(t, err)
	assert.ErrorIs(t, p.CreatePrincipal(ctx, dup), domain.ErrAlreadyExists)

	got, err := p.FindPrincipalByIdentifier(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, pr.ID, got.ID)
	assert.Equal(t, created, got.CreatedAt)

	assert.ErrorIs(t, p.AssignRole(ctx, pr.ID, domain.RoleAdmin), domain.ErrRoleNotFound)
	require.NoError(t, p.AssignRole(ctx, pr.ID, domain.RoleUser))
	assert.ErrorIs(t, p.AssignRole(ctx, pr.ID, domain.RoleUser), domain.ErrAlreadyExists)

	roles, err := p.PrincipalRoles(ctx, pr.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleUser}, roles)
}
