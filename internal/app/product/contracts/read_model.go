package contracts

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
)

// ReadModel is the query side of the product store.
type ReadModel interface {
	// GetProduct returns domain.ErrProductNotFound when the id is unknown.
	GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error)

	// ListProducts returns one window of the filtered, name-ordered product
	// list and the total number of rows that match the filter.
	ListProducts(ctx context.Context, filter dto.ProductFilter) ([]*dto.ProductSummaryDTO, int, error)

	// GetCategory returns domain.ErrCategoryNotFound when the id is unknown.
	GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error)

	// ListCategories returns every category ordered by name.
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
}
