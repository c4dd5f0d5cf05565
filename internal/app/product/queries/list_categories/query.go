package list_categories

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
)

// SpannerListCategoriesQuery reads the category reference data.
type SpannerListCategoriesQuery struct {
	Client *spanner.Client
}

func NewSpannerListCategoriesQuery(client *spanner.Client) *SpannerListCategoriesQuery {
	return &SpannerListCategoriesQuery{Client: client}
}

func (q *SpannerListCategoriesQuery) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	iter := q.Client.Single().Query(ctx, spanner.Statement{
		SQL: `SELECT category_id, name FROM categories ORDER BY name ASC, category_id ASC`,
	})
	defer iter.Stop()

	out := []*dto.CategoryDTO{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var c dto.CategoryDTO
		if err := row.Columns(&c.CategoryID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
}
