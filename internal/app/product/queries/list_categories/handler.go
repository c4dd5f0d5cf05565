package list_categories

import (
	"context"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return h.readModel.ListCategories(ctx)
}

// Options turns categories into picker entries with selected marked.
func Options(categories []*dto.CategoryDTO, selected int64) []dto.CategoryOption {
	out := make([]dto.CategoryOption, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryOption{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Selected:   c.CategoryID == selected,
		})
	}
	return out
}
