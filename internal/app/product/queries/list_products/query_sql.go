package list_products

import (
	"context"
	"fmt"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLListProductsQuery lists products from a database/sql store.
type SQLListProductsQuery struct {
	DB *sqldb.DB
}

func NewSQLListProductsQuery(db *sqldb.DB) *SQLListProductsQuery {
	return &SQLListProductsQuery{DB: db}
}

func (q *SQLListProductsQuery) ListProducts(ctx context.Context, filter dto.ProductFilter) ([]*dto.ProductSummaryDTO, int, error) {
	where := ""
	var args []interface{}
	if filter.Search != "" {
		where = " WHERE " + q.DB.Dialect.ContainsFold("name")
		args = append(args, filter.Search)
	}

	var total int
	if err := q.DB.QueryRowContext(ctx, q.DB.Rebind("SELECT COUNT(*) FROM products"+where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	query := q.DB.Rebind(`SELECT product_id, name, price, category_id
		FROM products` + where + `
		ORDER BY LOWER(name) ASC, product_id ASC
		LIMIT ? OFFSET ?`)
	rows, err := q.DB.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	var out []*dto.ProductSummaryDTO
	for rows.Next() {
		var item dto.ProductSummaryDTO
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.CategoryID); err != nil {
			return nil, 0, fmt.Errorf("could not scan product row: %w", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("could not iterate product rows: %w", err)
	}
	return out, total, nil
}
