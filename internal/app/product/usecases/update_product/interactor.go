package update_product

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	shared "github.com/murkotick/catalog-admin/internal/app/product/usecases/shared"
	"github.com/murkotick/catalog-admin/internal/app/product/utils"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
)

// Request replaces name, price and category of an existing product.
// PathID is the id the caller addressed; ProductID is the id carried in the
// payload. Version is the concurrency marker the caller read, zero if none.
type Request struct {
	PathID     int64
	ProductID  int64
	Version    int64
	Name       string
	Price      string
	CategoryID int64
}

// Interactor applies full-row updates with optimistic concurrency.
type Interactor struct {
	Writer    contracts.ProductWriter
	ReadModel contracts.ReadModel
	Clock     clock.Clock
	Log       logrus.FieldLogger
}

func NewInteractor(writer contracts.ProductWriter, readModel contracts.ReadModel, clk clock.Clock, logger logrus.FieldLogger) *Interactor {
	return &Interactor{
		Writer:    writer,
		ReadModel: readModel,
		Clock:     clk,
		Log:       logger,
	}
}

// Execute returns domain.ErrProductNotFound, domain.ErrConcurrencyConflict or
// a *shared.FormError when the update is not applied.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if req.PathID != req.ProductID {
		return domain.ErrProductNotFound
	}

	log := it.Log.WithFields(logrus.Fields{
		"usecase":    "update_product",
		"product_id": req.ProductID,
		"version":    req.Version,
	})

	form := &dto.ProductForm{
		ProductID:  req.ProductID,
		Version:    req.Version,
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}

	// 1. Field rules, then the category reference
	in, verr := shared.ParseInput(req.Name, req.Price, req.CategoryID)
	verr, err := shared.CheckCategory(ctx, it.ReadModel, in.CategoryID, verr)
	if err != nil {
		log.WithError(err).Error("Could not verify category")
		return shared.RejectPersistence(ctx, it.ReadModel, form)
	}
	if verr != nil {
		log.WithField("field_errors", verr.FieldErrors).Info("Product input rejected")
		return shared.Reject(ctx, it.ReadModel, form, verr, verr)
	}

	// 2. Load aggregate via read model
	current, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	if err != nil {
		log.WithError(err).Error("Could not load product for update")
		return shared.RejectPersistence(ctx, it.ReadModel, form)
	}

	expected := req.Version
	if expected == 0 {
		expected = current.Version
	}

	product := domain.ReconstructProduct(
		current.ProductID,
		current.Name,
		current.Price,
		current.CategoryID,
		current.Version,
		utils.TimeOrZero(utils.ParseTimePtr(current.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(current.UpdatedAt)),
	)

	// 3. Domain method: full replace
	if err := product.Replace(in, it.Clock.Now()); err != nil {
		var verr *domain.ValidationError
		errors.As(err, &verr)
		return shared.Reject(ctx, it.ReadModel, form, verr, err)
	}

	// 4. Conditional write
	outcome, err := it.Writer.UpdateProduct(ctx, product, expected)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			verr := shared.CategoryMissing(nil)
			return shared.Reject(ctx, it.ReadModel, form, verr, verr)
		}
		log.WithError(err).Error("An error occurred while updating the product")
		return shared.RejectPersistence(ctx, it.ReadModel, form)
	}

	switch outcome {
	case contracts.UpdateApplied:
		log.Info("Product updated")
		return nil
	case contracts.UpdateAbsent:
		log.Info("Product vanished before update")
		return domain.ErrProductNotFound
	default:
		log.WithField("expected_version", expected).Warn("Product changed since it was read")
		return domain.ErrConcurrencyConflict
	}
}
