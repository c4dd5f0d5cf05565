package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/outbox"
	"github.com/murkotick/catalog-admin/internal/models/m_category"
	"github.com/murkotick/catalog-admin/internal/models/m_product"
	commitplan "github.com/murkotick/catalog-admin/internal/pkg/committer"
)

var (
	errRowAbsent     = errors.New("row absent")
	errVersionMoved  = errors.New("version moved")
	errNothingToDrop = errors.New("nothing to delete")
)

// Committer applies a commit plan atomically.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// SpannerProductWriter satisfies contracts.ProductWriter and
// contracts.CategoryWriter on Spanner. Version checks run as plan guards
// inside the same read-write transaction that buffers the mutations.
type SpannerProductWriter struct {
	Products  *ProductRepo
	Outbox    *OutboxRepo
	Committer Committer
	NewID     IDSource
}

func NewSpannerProductWriter(committer Committer) *SpannerProductWriter {
	return &SpannerProductWriter{
		Products:  NewProductRepo(),
		Outbox:    NewOutboxRepo(),
		Committer: committer,
		NewID:     RandomID,
	}
}

func (w *SpannerProductWriter) InsertProduct(ctx context.Context, p *domain.Product) (int64, error) {
	p.AssignID(w.NewID())

	events, err := outbox.BuildEvents(p.DomainEvents())
	if err != nil {
		return 0, err
	}

	plan := commitplan.NewPlan()
	plan.Add(w.Products.InsertMut(p))
	for _, m := range w.Outbox.InsertMuts(events) {
		plan.Add(m)
	}

	if err := w.Committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.FailedPrecondition {
			return 0, fmt.Errorf("could not create product: %w: %v", domain.ErrCategoryNotFound, err)
		}
		return 0, fmt.Errorf("could not create product: %w", err)
	}
	return p.ID(), nil
}

func (w *SpannerProductWriter) UpdateProduct(ctx context.Context, p *domain.Product, expectedVersion int64) (contracts.UpdateOutcome, error) {
	events, err := outbox.BuildEvents(p.DomainEvents())
	if err != nil {
		return contracts.UpdateConflict, err
	}

	plan := commitplan.NewPlan()
	plan.Require(versionGuard(p.ID(), expectedVersion))
	plan.Add(w.Products.ReplaceMut(p, expectedVersion+1))
	for _, m := range w.Outbox.InsertMuts(events) {
		plan.Add(m)
	}

	err = w.Committer.Apply(ctx, plan)
	switch {
	case err == nil:
		return contracts.UpdateApplied, nil
	case errors.Is(err, errRowAbsent):
		return contracts.UpdateAbsent, nil
	case errors.Is(err, errVersionMoved):
		return contracts.UpdateConflict, nil
	case spanner.ErrCode(err) == codes.FailedPrecondition:
		return contracts.UpdateConflict, fmt.Errorf("could not update product: %w: %v", domain.ErrCategoryNotFound, err)
	default:
		return contracts.UpdateConflict, fmt.Errorf("could not update product: %w", err)
	}
}

func (w *SpannerProductWriter) DeleteProduct(ctx context.Context, ev *domain.ProductDeletedEvent) (bool, error) {
	events, err := outbox.BuildEvents([]domain.DomainEvent{ev})
	if err != nil {
		return false, err
	}

	plan := commitplan.NewPlan()
	plan.Require(existsGuard(ev.ProductID))
	plan.Add(w.Products.DeleteMut(ev.ProductID))
	for _, m := range w.Outbox.InsertMuts(events) {
		plan.Add(m)
	}

	err = w.Committer.Apply(ctx, plan)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errNothingToDrop):
		return false, nil
	default:
		return false, fmt.Errorf("could not delete product: %w", err)
	}
}

func (w *SpannerProductWriter) CreateCategory(ctx context.Context, name string) (int64, error) {
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return 0, err
	}

	id := w.NewID()
	plan := commitplan.NewPlan()
	plan.Add(m_category.InsertMutation(id, name))
	if err := w.Committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("could not create category: %w", err)
	}
	return id, nil
}

func versionGuard(productID, expected int64) commitplan.Guard {
	return func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		row, err := tx.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ColVersion})
		if spanner.ErrCode(err) == codes.NotFound {
			return errRowAbsent
		}
		if err != nil {
			return err
		}
		var current int64
		if err := row.Columns(&current); err != nil {
			return err
		}
		if current != expected {
			return errVersionMoved
		}
		return nil
	}
}

func existsGuard(productID int64) commitplan.Guard {
	return func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		_, err := tx.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ColProductID})
		if spanner.ErrCode(err) == codes.NotFound {
			return errNothingToDrop
		}
		return err
	}
}
