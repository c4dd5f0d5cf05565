package contracts

import (
	"context"

	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
)

// UpdateOutcome is the result of an optimistic update attempt.
type UpdateOutcome int

const (
	// UpdateApplied means the row matched the expected version and was replaced.
	UpdateApplied UpdateOutcome = iota
	// UpdateConflict means the row exists but its version moved on.
	UpdateConflict
	// UpdateAbsent means no row with that id exists.
	UpdateAbsent
)

func (o UpdateOutcome) String() string {
	switch o {
	case UpdateApplied:
		return "applied"
	case UpdateConflict:
		return "conflict"
	case UpdateAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ProductWriter is the write side of the product store. Every method writes
// the product change and the aggregate's outbox rows in one transaction.
type ProductWriter interface {
	// InsertProduct stores a new product, assigns its id on the aggregate and
	// returns that id.
	InsertProduct(ctx context.Context, p *domain.Product) (int64, error)

	// UpdateProduct replaces name, price and category of p when the stored
	// version equals expectedVersion. The stored version is incremented.
	UpdateProduct(ctx context.Context, p *domain.Product, expectedVersion int64) (UpdateOutcome, error)

	// DeleteProduct removes the row if present. It reports whether a row was
	// removed; the outbox row for ev is written only in that case.
	DeleteProduct(ctx context.Context, ev *domain.ProductDeletedEvent) (bool, error)
}

// CategoryWriter maintains category reference data. It is used by tooling
// and tests only; no public operation mutates categories.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, name string) (int64, error)
}
