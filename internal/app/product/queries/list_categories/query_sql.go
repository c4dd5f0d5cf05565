package list_categories

import (
	"context"
	"fmt"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLListCategoriesQuery reads the category reference data from a database/sql store.
type SQLListCategoriesQuery struct {
	DB *sqldb.DB
}

func NewSQLListCategoriesQuery(db *sqldb.DB) *SQLListCategoriesQuery {
	return &SQLListCategoriesQuery{DB: db}
}

func (q *SQLListCategoriesQuery) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	rows, err := q.DB.QueryContext(ctx, `SELECT category_id, name FROM categories ORDER BY name ASC, category_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	out := []*dto.CategoryDTO{}
	for rows.Next() {
		var c dto.CategoryDTO
		if err := rows.Scan(&c.CategoryID, &c.Name); err != nil {
			return nil, fmt.Errorf("could not scan category row: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate category rows: %w", err)
	}
	return out, nil
}
