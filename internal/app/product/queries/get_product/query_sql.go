package get_product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLGetProductQuery reads single rows from a database/sql store.
type SQLGetProductQuery struct {
	DB *sqldb.DB
}

func NewSQLGetProductQuery(db *sqldb.DB) *SQLGetProductQuery {
	return &SQLGetProductQuery{DB: db}
}

func (q *SQLGetProductQuery) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	query := q.DB.Rebind(`SELECT product_id, name, price, category_id, version, created_at, updated_at
		FROM products
		WHERE product_id = ?`)

	var (
		out                  dto.ProductDTO
		createdAt, updatedAt string
	)
	err := q.DB.QueryRowContext(ctx, query, productID).Scan(
		&out.ProductID, &out.Name, &out.Price, &out.CategoryID, &out.Version, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	out.CreatedAt = &createdAt
	out.UpdatedAt = &updatedAt
	return &out, nil
}

func (q *SQLGetProductQuery) GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	query := q.DB.Rebind(`SELECT category_id, name FROM categories WHERE category_id = ?`)

	var out dto.CategoryDTO
	err := q.DB.QueryRowContext(ctx, query, categoryID).Scan(&out.CategoryID, &out.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return &out, nil
}
