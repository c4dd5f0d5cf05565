package login_test

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
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/seed"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/password"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

type stubIssuer struct {
	gotID    string
	gotRoles []string
}

func (s *stubIssuer) Issue(principalID, identifier string, roles []string) (string, time.Time, error) {
	s.gotID = principalID
	s.gotRoles = roles
	return "token-for-" + identifier, time.Unix(1700000000, 0), nil
}

func newLogin(t *testing.T) (*login.Interactor, *stubIssuer) {
	t.Helper()
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = bcrypt.DefaultCost })

	db := sqldbtest.New(t)
	logger, _ := test.NewNullLogger()
	provider := repo.NewSQLProvider(db)
	require.NoError(t, seed.NewInteractor(provider, clock.RealClock{}, logger, "", "").EnsureBootstrapState(context.Background()))

	issuer := &stubIssuer{}
	return login.NewInteractor(provider, issuer, logger), issuer
}

func TestExecute_SeededAdminGetsToken(t *testing.T) {
	it, issuer := newLogin(t)

	res, err := it.Execute(context.Background(), login.Request{Identifier: "admin@example.com", Secret: "Admin@123"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-admin@example.com", res.Token)
	assert.Equal(t, []string{domain.RoleAdmin}, res.Roles)
	assert.NotEmpty(t, issuer.gotID)
	assert.Equal(t, res.Roles, issuer.gotRoles)
}

func TestExecute_BadCredentials(t *testing.T) {
	it, _ := newLogin(t)

	_, err := it.Execute(context.Background(), login.Request{Identifier: "admin@example.com", Secret: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = it.Execute(context.Background(), login.Request{Identifier: "ghost@example.com", Secret: "Admin@123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
