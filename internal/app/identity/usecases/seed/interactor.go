package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/murkotick/catalog-admin/internal/app/identity/contracts"
	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/password"
)

const (
	DefaultAdminIdentifier = "admin@example.com"
	DefaultAdminSecret     = "Admin@123"
)

// Interactor provisions the roles and the default administrator.
type Interactor struct {
	Provider        contracts.Provider
	Clock           clock.Clock
	Log             logrus.FieldLogger
	AdminIdentifier string
	AdminSecret     string
}

func NewInteractor(provider contracts.Provider, clk clock.Clock, logger logrus.FieldLogger, identifier, secret string) *Interactor {
	if identifier == "" {
		identifier = DefaultAdminIdentifier
	}
	if secret == "" {
		secret = DefaultAdminSecret
	}
	return &Interactor{
		Provider:        provider,
		Clock:           clk,
		Log:             logger,
		AdminIdentifier: identifier,
		AdminSecret:     secret,
	}
}

// EnsureBootstrapState creates whatever is missing of: the default roles,
// the admin principal and its Admin assignment. Each step checks before it
// writes, so running it again changes nothing. An existing admin keeps its
// stored secret.
func (it *Interactor) EnsureBootstrapState(ctx context.Context) error {
	log := it.Log.WithField("usecase", "seed")

	// 1. Roles
	for _, role := range domain.DefaultRoles {
		exists, err := it.Provider.RoleExists(ctx, role)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
		if exists {
			continue
		}
		if err := it.Provider.CreateRole(ctx, role); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
		log.WithField("role", role).Info("Role created")
	}

	// 2. Admin principal
	admin, err := it.Provider.FindPrincipalByIdentifier(ctx, it.AdminIdentifier)
	if errors.Is(err, domain.ErrPrincipalNotFound) {
		admin, err = it.createAdmin(ctx)
		if err == nil {
			log.WithField("identifier", admin.Identifier).Info("Admin principal created")
		}
	}
	if err != nil {
		return fmt.Errorf("seed admin principal: %w", err)
	}

	// 3. Admin role assignment
	has, err := it.Provider.PrincipalHasRole(ctx, admin.ID, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}
	if !has {
		if err := it.Provider.AssignRole(ctx, admin.ID, domain.RoleAdmin); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("seed admin role: %w", err)
		}
		log.WithField("identifier", admin.Identifier).Info("Admin role assigned")
	}

	return nil
}

func (it *Interactor) createAdmin(ctx context.Context) (*domain.Principal, error) {
	hash, err := password.Hash(it.AdminSecret)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewPrincipal(it.AdminIdentifier, hash, it.Clock.Now())
	if err != nil {
		return nil, err
	}

	err = it.Provider.CreatePrincipal(ctx, p)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Another instance won the race; use its row.
		return it.Provider.FindPrincipalByIdentifier(ctx, it.AdminIdentifier)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
