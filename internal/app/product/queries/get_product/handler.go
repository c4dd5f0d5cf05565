package get_product

import (
	"context"
	"fmt"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns the product with its category resolved by a second read.
// Both the detail view and the delete confirmation use it.
func (h *Handler) Execute(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	if productID <= 0 {
		return nil, domain.ErrProductNotFound
	}

	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cat, err := h.readModel.GetCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve category %d of product %d: %w", p.CategoryID, productID, err)
	}
	p.Category = cat

	return p, nil
}
