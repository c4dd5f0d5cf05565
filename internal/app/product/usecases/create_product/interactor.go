package create_product

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	shared "github.com/murkotick/catalog-admin/internal/app/product/usecases/shared"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
)

// Request is the application-level create-product request. Price is the
// submitted text so that it can be echoed back unchanged.
type Request struct {
	Name       string
	Price      string
	CategoryID int64
}

// Interactor implements the create-product usecase.
type Interactor struct {
	Writer    contracts.ProductWriter
	ReadModel contracts.ReadModel
	Clock     clock.Clock
	Log       logrus.FieldLogger
}

// NewInteractor constructs the interactor.
func NewInteractor(writer contracts.ProductWriter, readModel contracts.ReadModel, clk clock.Clock, logger logrus.FieldLogger) *Interactor {
	return &Interactor{
		Writer:    writer,
		ReadModel: readModel,
		Clock:     clk,
		Log:       logger,
	}
}

// Execute validates the request, stores the product and its outbox event in
// one commit and returns the new id. Rejections come back as *shared.FormError.
func (it *Interactor) Execute(ctx context.Context, req Request) (int64, error) {
	log := it.Log.WithFields(logrus.Fields{
		"usecase":     "create_product",
		"name":        req.Name,
		"category_id": req.CategoryID,
	})
	log.Info("Product received for creation")

	form := &dto.ProductForm{Name: req.Name, Price: req.Price, CategoryID: req.CategoryID}

	// 1. Field rules, then the category reference
	in, verr := shared.ParseInput(req.Name, req.Price, req.CategoryID)
	verr, err := shared.CheckCategory(ctx, it.ReadModel, in.CategoryID, verr)
	if err != nil {
		log.WithError(err).Error("Could not verify category")
		return 0, shared.RejectPersistence(ctx, it.ReadModel, form)
	}
	if verr != nil {
		log.WithField("field_errors", verr.FieldErrors).Info("Product input rejected")
		return 0, shared.Reject(ctx, it.ReadModel, form, verr, verr)
	}

	// 2. Build domain aggregate
	product, err := domain.NewProduct(in, it.Clock.Now())
	if err != nil {
		return 0, shared.Reject(ctx, it.ReadModel, form, asValidation(err), err)
	}

	// 3. Persist row and outbox event together
	log.Info("Attempting to add product")
	id, err := it.Writer.InsertProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			verr := shared.CategoryMissing(nil)
			return 0, shared.Reject(ctx, it.ReadModel, form, verr, verr)
		}
		log.WithError(err).Error("An error occurred while creating the product")
		return 0, shared.RejectPersistence(ctx, it.ReadModel, form)
	}

	log.WithField("product_id", id).Info("Changes saved successfully")
	return id, nil
}

func asValidation(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
