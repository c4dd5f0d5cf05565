package get_product

import (
	"context"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/utils"
	"github.com/murkotick/catalog-admin/internal/models/m_product"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches one product row.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, price, category_id, version, created_at, updated_at
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id, categoryID, version int64
		name                    string
		price                   big.Rat
		createdAt, updatedAt    time.Time
	)
	if err := row.Columns(&id, &name, &price, &categoryID, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	amount, err := m_product.PriceFromNumeric(price)
	if err != nil {
		return nil, err
	}

	return &dto.ProductDTO{
		ProductID:  id,
		Name:       name,
		Price:      amount,
		CategoryID: categoryID,
		Version:    version,
		CreatedAt:  utils.FormatTimePtr(createdAt),
		UpdatedAt:  utils.FormatTimePtr(updatedAt),
	}, nil
}

// GetCategory fetches one category row.
func (q *SpannerGetProductQuery) GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	row, err := q.Client.Single().ReadRow(ctx, "categories", spanner.Key{categoryID}, []string{"category_id", "name"})
	if spanner.ErrCode(err) == codes.NotFound {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	out := &dto.CategoryDTO{}
	if err := row.Columns(&out.CategoryID, &out.Name); err != nil {
		return nil, err
	}
	return out, nil
}
