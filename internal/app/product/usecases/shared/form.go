package shared

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_categories"
)

// FormError is returned when a create or edit submission cannot be saved.
// Form echoes the submitted values with messages and a fresh category list
// so the caller can show the form again. Err is a *domain.ValidationError or
// wraps domain.ErrPersistence.
type FormError struct {
	Form *dto.ProductForm
	Err  error
}

func (e *FormError) Error() string {
	return e.Err.Error()
}

func (e *FormError) Unwrap() error {
	return e.Err
}

// ParseInput turns raw submitted values into a domain input and runs the
// field rules. A price that is present but not a number is reported as
// such rather than as missing.
func ParseInput(name, priceText string, categoryID int64) (domain.ProductInput, *domain.ValidationError) {
	in := domain.ProductInput{Name: name, CategoryID: categoryID}

	badPrice := false
	if t := strings.TrimSpace(priceText); t != "" {
		d, err := decimal.NewFromString(t)
		if err != nil {
			badPrice = true
		} else {
			in.Price = &d
		}
	}

	verr := domain.ValidateProductInput(in)
	if badPrice {
		if verr == nil {
			verr = domain.NewValidationError()
		}
		verr.FieldErrors[domain.InputPrice] = domain.MsgPriceInvalid
	}
	return in, verr
}

// CheckCategory adds a field error when categoryID does not name a stored
// category. It is skipped when the category field already failed.
func CheckCategory(ctx context.Context, rm contracts.ReadModel, categoryID int64, verr *domain.ValidationError) (*domain.ValidationError, error) {
	if verr != nil {
		if _, failed := verr.FieldErrors[domain.InputCategoryID]; failed {
			return verr, nil
		}
	}

	_, err := rm.GetCategory(ctx, categoryID)
	switch {
	case err == nil:
		return verr, nil
	case errors.Is(err, domain.ErrCategoryNotFound):
		return CategoryMissing(verr), nil
	default:
		return verr, err
	}
}

// CategoryMissing records the unknown-category message on verr, creating it if needed.
func CategoryMissing(verr *domain.ValidationError) *domain.ValidationError {
	if verr == nil {
		verr = domain.NewValidationError()
	}
	verr.AddField(domain.InputCategoryID, domain.MsgCategoryNotFound)
	return verr
}

// Reject fills form with the messages of verr and the category options and
// wraps it in a FormError whose cause is matched by errors.Is.
func Reject(ctx context.Context, rm contracts.ReadModel, form *dto.ProductForm, verr *domain.ValidationError, cause error) error {
	if verr != nil {
		form.FieldErrors = verr.FieldErrors
		form.Errors = verr.Errors
	}

	cats, err := rm.ListCategories(ctx)
	if err != nil {
		form.Categories = []dto.CategoryOption{}
		return &FormError{Form: form, Err: errors.Join(cause, fmt.Errorf("load categories: %w", err))}
	}
	form.Categories = list_categories.Options(cats, form.CategoryID)

	return &FormError{Form: form, Err: cause}
}

// RejectPersistence reports a store failure with only the generic message.
func RejectPersistence(ctx context.Context, rm contracts.ReadModel, form *dto.ProductForm) error {
	verr := domain.NewValidationError()
	verr.Add(domain.MsgUnableToSave)
	return Reject(ctx, rm, form, verr, domain.ErrPersistence)
}
