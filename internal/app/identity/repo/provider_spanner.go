package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/models/m_identity"
	commitplan "github.com/murkotick/catalog-admin/internal/pkg/committer"
)

// Committer applies a commit plan atomically.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// SpannerProvider stores identities in Spanner. Uniqueness of role names and
// identifiers is checked by plan guards in the same transaction as the insert.
type SpannerProvider struct {
	client    *spanner.Client
	committer Committer
}

func NewSpannerProvider(client *spanner.Client, committer Committer) *SpannerProvider {
	return &SpannerProvider{client: client, committer: committer}
}

func (p *SpannerProvider) RoleExists(ctx context.Context, name string) (bool, error) {
	_, err := roleID(ctx, p.client.Single(), name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *SpannerProvider) CreateRole(ctx context.Context, name string) error {
	plan := commitplan.NewPlan()
	plan.Require(func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		_, err := roleID(ctx, tx, name)
		if err == nil {
			return fmt.Errorf("role %q: %w", name, domain.ErrAlreadyExists)
		}
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil
		}
		return err
	})
	plan.Add(m_identity.InsertRoleMutation(uuid.NewString(), name))

	if err := p.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("could not create role %q: %w", name, err)
	}
	return nil
}

func (p *SpannerProvider) FindPrincipalByIdentifier(ctx context.Context, identifier string) (*domain.Principal, error) {
	return findPrincipal(ctx, p.client.Single(), identifier)
}

func (p *SpannerProvider) CreatePrincipal(ctx context.Context, pr *domain.Principal) error {
	plan := commitplan.NewPlan()
	plan.Require(func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		_, err := findPrincipal(ctx, tx, pr.Identifier)
		if err == nil {
			return fmt.Errorf("principal %q: %w", pr.Identifier, domain.ErrAlreadyExists)
		}
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil
		}
		return err
	})
	plan.Add(m_identity.InsertPrincipalMutation(pr.ID, pr.Identifier, pr.SecretHash, pr.CreatedAt))

	if err := p.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("could not create principal: %w", err)
	}
	return nil
}

func (p *SpannerProvider) PrincipalHasRole(ctx context.Context, principalID, role string) (bool, error) {
	roles, err := p.PrincipalRoles(ctx, principalID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (p *SpannerProvider) AssignRole(ctx context.Context, principalID, role string) error {
	plan := commitplan.NewPlan()
	plan.Require(func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		id, err := roleID(ctx, tx, role)
		if err != nil {
			return err
		}
		_, err = tx.ReadRow(ctx, m_identity.PrincipalRolesTable, spanner.Key{principalID, id}, []string{m_identity.ColRoleID})
		if err == nil {
			return fmt.Errorf("role %q for principal %s: %w", role, principalID, domain.ErrAlreadyExists)
		}
		if spanner.ErrCode(err) == codes.NotFound {
			// The role id is only known inside the transaction.
			return tx.BufferWrite([]*spanner.Mutation{m_identity.InsertAssignmentMutation(principalID, id)})
		}
		return err
	})

	if err := p.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}
		return fmt.Errorf("could not assign role %q: %w", role, err)
	}
	return nil
}

func (p *SpannerProvider) PrincipalRoles(ctx context.Context, principalID string) ([]string, error) {
	iter := p.client.Single().Query(ctx, spanner.Statement{
		SQL: `SELECT r.name
		      FROM principal_roles pr
		      JOIN roles r ON r.role_id = pr.role_id
		      WHERE pr.principal_id = @id
		      ORDER BY r.name`,
		Params: map[string]interface{}{"id": principalID},
	})
	defer iter.Stop()

	out := []string{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not list roles: %w", err)
		}
		var name string
		if err := row.Columns(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
}

// querier is satisfied by both single-use and read-write transactions.
type querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

func roleID(ctx context.Context, q querier, name string) (string, error) {
	iter := q.Query(ctx, spanner.Statement{
		SQL:    `SELECT role_id FROM roles WHERE name = @name LIMIT 1`,
		Params: map[string]interface{}{"name": name},
	})
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", domain.ErrRoleNotFound
	}
	if err != nil {
		return "", err
	}
	var id string
	if err := row.Columns(&id); err != nil {
		return "", err
	}
	return id, nil
}

func findPrincipal(ctx context.Context, q querier, identifier string) (*domain.Principal, error) {
	iter := q.Query(ctx, spanner.Statement{
		SQL: `SELECT principal_id, identifier, secret_hash, created_at
		      FROM principals
		      WHERE identifier = @identifier`,
		Params: map[string]interface{}{"identifier": identifier},
	})
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}
	var out domain.Principal
	if err := row.Columns(&out.ID, &out.Identifier, &out.SecretHash, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
