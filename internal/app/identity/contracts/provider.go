package contracts

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
)

// Provider is the identity store: roles, principals and role assignments.
// Create methods return an error wrapping domain.ErrAlreadyExists when the
// row is already there, so that callers racing on setup can ignore it.
type Provider interface {
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) error

	// FindPrincipalByIdentifier returns domain.ErrPrincipalNotFound when absent.
	FindPrincipalByIdentifier(ctx context.Context, identifier string) (*domain.Principal, error)
	CreatePrincipal(ctx context.Context, p *domain.Principal) error

	PrincipalHasRole(ctx context.Context, principalID, role string) (bool, error)
	// AssignRole returns domain.ErrRoleNotFound when the role is not stored.
	AssignRole(ctx context.Context, principalID, role string) error
	PrincipalRoles(ctx context.Context, principalID string) ([]string, error)
}
