package list_products

import (
	"context"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/pkg/pagination"
)

// PageSize is the fixed number of products per page.
const PageSize = 10

// Request selects a page of the product list. Page values below 1 mean the
// first page; an empty SearchString means no filter.
type Request struct {
	SearchString string
	Page         int
}

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns one page of products whose name contains the search text,
// case-insensitively, ordered by name. A page past the end yields no items
// but still reports the totals.
func (h *Handler) Execute(ctx context.Context, req Request) (*dto.ProductPage, error) {
	page := pagination.Normalize(req.Page)

	items, total, err := h.readModel.ListProducts(ctx, dto.ProductFilter{
		Search: req.SearchString,
		Limit:  PageSize,
		Offset: pagination.Offset(page, PageSize),
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*dto.ProductSummaryDTO{}
	}

	totalPages := pagination.TotalPages(total, PageSize)
	return &dto.ProductPage{
		Items:         items,
		Page:          page,
		PageSize:      PageSize,
		TotalCount:    total,
		TotalPages:    totalPages,
		HasPrevious:   page > 1,
		HasNext:       page < totalPages,
		CurrentFilter: req.SearchString,
	}, nil
}
