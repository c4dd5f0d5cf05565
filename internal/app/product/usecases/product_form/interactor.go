package product_form

import (
	"context"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_categories"
)

// Interactor prepares the payloads behind the create and edit forms.
type Interactor struct {
	ReadModel contracts.ReadModel
}

func NewInteractor(readModel contracts.ReadModel) *Interactor {
	return &Interactor{ReadModel: readModel}
}

// NewForm returns an empty form with every category to choose from.
func (it *Interactor) NewForm(ctx context.Context) (*dto.ProductForm, error) {
	cats, err := it.ReadModel.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductForm{Categories: list_categories.Options(cats, 0)}, nil
}

// EditForm returns the stored values, including the version marker to send
// back with the update, and the category list with the current one selected.
func (it *Interactor) EditForm(ctx context.Context, productID int64) (*dto.ProductForm, error) {
	p, err := it.ReadModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	cats, err := it.ReadModel.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductForm{
		ProductID:  p.ProductID,
		Version:    p.Version,
		Name:       p.Name,
		Price:      p.Price.StringFixed(2),
		CategoryID: p.CategoryID,
		Categories: list_categories.Options(cats, p.CategoryID),
	}, nil
}
