package queries

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/get_product"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_categories"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLReadModel satisfies contracts.ReadModel on SQLite or Postgres.
type SQLReadModel struct {
	getQ  *get_product.SQLGetProductQuery
	listQ *list_products.SQLListProductsQuery
	catQ  *list_categories.SQLListCategoriesQuery
}

func NewSQLReadModel(db *sqldb.DB) *SQLReadModel {
	return &SQLReadModel{
		getQ:  get_product.NewSQLGetProductQuery(db),
		listQ: list_products.NewSQLListProductsQuery(db),
		catQ:  list_categories.NewSQLListCategoriesQuery(db),
	}
}

func (rm *SQLReadModel) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SQLReadModel) ListProducts(ctx context.Context, filter dto.ProductFilter) ([]*dto.ProductSummaryDTO, int, error) {
	return rm.listQ.ListProducts(ctx, filter)
}

func (rm *SQLReadModel) GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	return rm.getQ.GetCategory(ctx, categoryID)
}

func (rm *SQLReadModel) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return rm.catQ.ListCategories(ctx)
}
