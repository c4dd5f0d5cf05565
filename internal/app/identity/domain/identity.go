package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role names known to the authorization policy.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
	RoleGuest = "Guest"
)

// DefaultRoles are provisioned by the seed routine, in this order.
var DefaultRoles = []string{RoleAdmin, RoleUser, RoleGuest}

var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Principal is an account that can sign in. Identifier is the login name
// (an email address for the seeded admin).
type Principal struct {
	ID         string
	Identifier string
	SecretHash string
	CreatedAt  time.Time
}

// NewPrincipal assigns a fresh id. secretHash must already be hashed.
func NewPrincipal(identifier, secretHash string, now time.Time) (*Principal, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errors.New("principal identifier cannot be empty")
	}
	if secretHash == "" {
		return nil, errors.New("principal secret hash cannot be empty")
	}
	return &Principal{
		ID:         uuid.NewString(),
		Identifier: identifier,
		SecretHash: secretHash,
		CreatedAt:  now,
	}, nil
}
