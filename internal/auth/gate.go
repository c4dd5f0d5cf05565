package auth

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// Principal is the authenticated caller as carried by a token.
type Principal struct {
	ID         string
	Identifier string
	Roles      []string
}

// HasRole reports whether the principal holds role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Gate checks callers against a Policy.
type Gate struct {
	policy Policy
}

func NewGate(policy Policy) *Gate {
	return &Gate{policy: policy}
}

// Authorize returns nil when p may run op. p is nil for anonymous callers.
func (g *Gate) Authorize(op Operation, p *Principal) error {
	req, ok := g.policy[op]
	if !ok {
		return fmt.Errorf("%w: no policy for %s", ErrForbidden, op)
	}
	if req.Role == "" {
		return nil
	}
	if p == nil {
		return ErrUnauthenticated
	}
	if !p.HasRole(req.Role) {
		return fmt.Errorf("%w: %s requires role %s", ErrForbidden, op, req.Role)
	}
	return nil
}
