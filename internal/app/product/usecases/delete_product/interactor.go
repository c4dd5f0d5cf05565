package delete_product

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/get_product"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
)

// Interactor implements the two-step delete: a confirmation read and the
// idempotent removal.
type Interactor struct {
	Writer  contracts.ProductWriter
	Details *get_product.Handler
	Clock   clock.Clock
	Log     logrus.FieldLogger
}

func NewInteractor(writer contracts.ProductWriter, readModel contracts.ReadModel, clk clock.Clock, logger logrus.FieldLogger) *Interactor {
	return &Interactor{
		Writer:  writer,
		Details: get_product.NewHandler(readModel),
		Clock:   clk,
		Log:     logger,
	}
}

// Confirm returns what is about to be deleted, category included.
func (it *Interactor) Confirm(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return it.Details.Execute(ctx, productID)
}

// Execute removes the product. A missing product is not an error. Store
// failures wrap domain.ErrPersistence.
func (it *Interactor) Execute(ctx context.Context, productID int64) error {
	log := it.Log.WithFields(logrus.Fields{"usecase": "delete_product", "product_id": productID})
	if productID <= 0 {
		log.Debug("Nothing to delete")
		return nil
	}

	deleted, err := it.Writer.DeleteProduct(ctx, domain.NewProductDeletedEvent(productID, it.Clock.Now()))
	if err != nil {
		log.WithError(err).Error("An error occurred while deleting the product")
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if deleted {
		log.Info("Product deleted")
	} else {
		log.Info("Product already absent")
	}
	return nil
}
