// Package auth decides who may run which catalog operation.
package auth

import "github.com/murkotick/catalog-admin/internal/app/identity/domain"

// Operation names a caller-facing catalog operation.
type Operation string

const (
	OpListProducts    Operation = "ListProducts"
	OpProductDetail   Operation = "ProductDetail"
	OpNewProductForm  Operation = "NewProductForm"
	OpCreateProduct   Operation = "CreateProduct"
	OpEditProductForm Operation = "EditProductForm"
	OpUpdateProduct   Operation = "UpdateProduct"
	OpDeleteConfirm   Operation = "DeleteConfirm"
	OpDeleteProduct   Operation = "DeleteProduct"
)

// Requirement is what a caller must present. An empty Role admits anonymous callers.
type Requirement struct {
	Role string
}

// Anonymous admits every caller.
var Anonymous = Requirement{}

// RequireRole admits authenticated callers holding role.
func RequireRole(role string) Requirement {
	return Requirement{Role: role}
}

// Policy maps each operation to its requirement. Operations missing from
// the table are denied.
type Policy map[Operation]Requirement

// DefaultPolicy is the catalog's access table. Create and edit need Admin.
// Reads are public, and so are both delete steps.
func DefaultPolicy() Policy {
	return Policy{
		OpListProducts:    Anonymous,
		OpProductDetail:   Anonymous,
		OpNewProductForm:  RequireRole(domain.RoleAdmin),
		OpCreateProduct:   RequireRole(domain.RoleAdmin),
		OpEditProductForm: RequireRole(domain.RoleAdmin),
		OpUpdateProduct:   RequireRole(domain.RoleAdmin),
		OpDeleteConfirm:   Anonymous,
		OpDeleteProduct:   Anonymous,
	}
}

// WithDeleteRequiresAdmin returns a copy in which both delete steps need Admin.
func (p Policy) WithDeleteRequiresAdmin() Policy {
	out := make(Policy, len(p))
	for op, req := range p {
		out[op] = req
	}
	out[OpDeleteConfirm] = RequireRole(domain.RoleAdmin)
	out[OpDeleteProduct] = RequireRole(domain.RoleAdmin)
	return out
}
