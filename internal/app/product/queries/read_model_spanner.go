package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/get_product"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_categories"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ  *get_product.SpannerGetProductQuery
	listQ *list_products.SpannerListProductsQuery
	catQ  *list_categories.SpannerListCategoriesQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:  get_product.NewSpannerGetProductQuery(client),
		listQ: list_products.NewSpannerListProductsQuery(client),
		catQ:  list_categories.NewSpannerListCategoriesQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, filter dto.ProductFilter) ([]*dto.ProductSummaryDTO, int, error) {
	return rm.listQ.ListProducts(ctx, filter)
}

func (rm *SpannerReadModel) GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	return rm.getQ.GetCategory(ctx, categoryID)
}

func (rm *SpannerReadModel) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return rm.catQ.ListCategories(ctx)
}
