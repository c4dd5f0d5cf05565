package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/utils"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLProvider stores identities in SQLite or Postgres.
type SQLProvider struct {
	db *sqldb.DB
}

func NewSQLProvider(db *sqldb.DB) *SQLProvider {
	return &SQLProvider{db: db}
}

func (p *SQLProvider) RoleExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := p.db.QueryRowContext(ctx, p.db.Rebind(`SELECT COUNT(*) FROM roles WHERE name = ?`), name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("could not look up role %q: %w", name, err)
	}
	return n > 0, nil
}

func (p *SQLProvider) CreateRole(ctx context.Context, name string) error {
	_, err := p.db.ExecContext(ctx, p.db.Rebind(`INSERT INTO roles (role_id, name) VALUES (?, ?)`), uuid.NewString(), name)
	if sqldb.IsUniqueViolation(err) {
		return fmt.Errorf("role %q: %w", name, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("could not create role %q: %w", name, err)
	}
	return nil
}

func (p *SQLProvider) FindPrincipalByIdentifier(ctx context.Context, identifier string) (*domain.Principal, error) {
	query := p.db.Rebind(`SELECT principal_id, identifier, secret_hash, created_at FROM principals WHERE identifier = ?`)

	var (
		out       domain.Principal
		createdAt string
	)
	err := p.db.QueryRowContext(ctx, query, identifier).Scan(&out.ID, &out.Identifier, &out.SecretHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not look up principal: %w", err)
	}
	if t, perr := time.Parse(utils.TimestampLayout, createdAt); perr == nil {
		out.CreatedAt = t
	}
	return &out, nil
}

func (p *SQLProvider) CreatePrincipal(ctx context.Context, pr *domain.Principal) error {
	query := p.db.Rebind(`INSERT INTO principals (principal_id, identifier, secret_hash, created_at) VALUES (?, ?, ?, ?)`)
	_, err := p.db.ExecContext(ctx, query, pr.ID, pr.Identifier, pr.SecretHash, utils.FormatTime(pr.CreatedAt))
	if sqldb.IsUniqueViolation(err) {
		return fmt.Errorf("principal %q: %w", pr.Identifier, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("could not create principal: %w", err)
	}
	return nil
}

func (p *SQLProvider) PrincipalHasRole(ctx context.Context, principalID, role string) (bool, error) {
	query := p.db.Rebind(`SELECT COUNT(*)
		FROM principal_roles pr
		JOIN roles r ON r.role_id = pr.role_id
		WHERE pr.principal_id = ? AND r.name = ?`)

	var n int
	if err := p.db.QueryRowContext(ctx, query, principalID, role).Scan(&n); err != nil {
		return false, fmt.Errorf("could not check role assignment: %w", err)
	}
	return n > 0, nil
}

func (p *SQLProvider) AssignRole(ctx context.Context, principalID, role string) error {
	return p.db.InTx(ctx, func(tx *sql.Tx) error {
		var roleID string
		err := tx.QueryRowContext(ctx, p.db.Rebind(`SELECT role_id FROM roles WHERE name = ?`), role).Scan(&roleID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("role %q: %w", role, domain.ErrRoleNotFound)
		}
		if err != nil {
			return fmt.Errorf("could not look up role %q: %w", role, err)
		}

		_, err = tx.ExecContext(ctx, p.db.Rebind(`INSERT INTO principal_roles (principal_id, role_id) VALUES (?, ?)`), principalID, roleID)
		if sqldb.IsUniqueViolation(err) {
			return fmt.Errorf("role %q for principal %s: %w", role, principalID, domain.ErrAlreadyExists)
		}
		if err != nil {
			return fmt.Errorf("could not assign role %q: %w", role, err)
		}
		return nil
	})
}

func (p *SQLProvider) PrincipalRoles(ctx context.Context, principalID string) ([]string, error) {
	query := p.db.Rebind(`SELECT r.name
		FROM principal_roles pr
		JOIN roles r ON r.role_id = pr.role_id
		WHERE pr.principal_id = ?
		ORDER BY r.name`)

	rows, err := p.db.QueryContext(ctx, query, principalID)
	if err != nil {
		return nil, fmt.Errorf("could not list roles: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
