package list_products

import (
	"context"
	"math/big"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/models/m_product"
)

// SpannerListProductsQuery lists products with an optional name filter.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

// ListProducts reads the page and the total count from one snapshot.
func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, filter dto.ProductFilter) ([]*dto.ProductSummaryDTO, int, error) {
	where := ""
	params := map[string]interface{}{}
	if filter.Search != "" {
		where = " WHERE STRPOS(LOWER(name), LOWER(@search)) > 0"
		params["search"] = filter.Search
	}

	ro := q.Client.ReadOnlyTransaction()
	defer ro.Close()

	total, err := q.count(ctx, ro, where, params)
	if err != nil {
		return nil, 0, err
	}

	listParams := map[string]interface{}{
		"limit":  int64(filter.Limit),
		"offset": int64(filter.Offset),
	}
	for k, v := range params {
		listParams[k] = v
	}
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, price, category_id
		FROM products` + where + `
		ORDER BY LOWER(name) ASC, product_id ASC
		LIMIT @limit OFFSET @offset`,
		Params: listParams,
	}
	iter := ro.Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductSummaryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, total, nil
		}
		if err != nil {
			return nil, 0, err
		}

		var (
			item  dto.ProductSummaryDTO
			price big.Rat
		)
		if err := row.Columns(&item.ProductID, &item.Name, &price, &item.CategoryID); err != nil {
			return nil, 0, err
		}
		if item.Price, err = m_product.PriceFromNumeric(price); err != nil {
			return nil, 0, err
		}
		out = append(out, &item)
	}
}

func (q *SpannerListProductsQuery) count(ctx context.Context, ro *spanner.ReadOnlyTransaction, where string, params map[string]interface{}) (int, error) {
	iter := ro.Query(ctx, spanner.Statement{SQL: "SELECT COUNT(*) FROM products" + where, Params: params})
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}
