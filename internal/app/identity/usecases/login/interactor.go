package login

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/murkotick/catalog-admin/internal/app/identity/contracts"
	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/password"
)

// TokenIssuer signs an access token for a principal and its roles.
type TokenIssuer interface {
	Issue(principalID, identifier string, roles []string) (string, time.Time, error)
}

type Request struct {
	Identifier string
	Secret     string
}

type Result struct {
	Token     string
	ExpiresAt time.Time
	Roles     []string
}

// Interactor exchanges credentials for a token.
type Interactor struct {
	Provider contracts.Provider
	Tokens   TokenIssuer
	Log      logrus.FieldLogger
}

func NewInteractor(provider contracts.Provider, tokens TokenIssuer, logger logrus.FieldLogger) *Interactor {
	return &Interactor{Provider: provider, Tokens: tokens, Log: logger}
}

// Execute returns domain.ErrInvalidCredentials for an unknown identifier and
// for a wrong secret alike.
func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	log := it.Log.WithFields(logrus.Fields{"usecase": "login", "identifier": req.Identifier})

	p, err := it.Provider.FindPrincipalByIdentifier(ctx, req.Identifier)
	if errors.Is(err, domain.ErrPrincipalNotFound) {
		log.Info("Login rejected: unknown identifier")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if !password.Check(p.SecretHash, req.Secret) {
		log.Info("Login rejected: secret mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := it.Provider.PrincipalRoles(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token, exp, err := it.Tokens.Issue(p.ID, p.Identifier, roles)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	log.WithField("roles", roles).Info("Login succeeded")
	return &Result{Token: token, ExpiresAt: exp, Roles: roles}, nil
}
