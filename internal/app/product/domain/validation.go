package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Input field keys used in validation results and form payloads.
const (
	InputName       = "name"
	InputPrice      = "price"
	InputCategoryID = "categoryId"
)

// Messages shown next to the offending field.
const (
	MsgNameRequired     = "The Name field is required."
	MsgNameTooLong      = "The Name field must be at most 255 characters."
	MsgPriceRequired    = "The Price field is required."
	MsgPriceInvalid     = "The Price field must be a number."
	MsgPriceOutOfRange  = "Price must be a positive value."
	MsgPriceScale       = "The Price field can have at most two decimal places."
	MsgCategoryRequired = "The CategoryId field is required."
	MsgCategoryNotFound = "The selected category does not exist."
	MsgUnableToSave     = "Unable to save changes. Try again later."
)

const maxProductNameLength = 255

// priceScale is the number of fractional digits every store keeps.
const priceScale = 2

// ProductInput is the caller-supplied part of a product.
// A nil Price means the field was not provided at all.
type ProductInput struct {
	Name       string
	Price      *decimal.Decimal
	CategoryID int64
}

// ValidationError collects every field problem found in one pass plus
// messages that do not belong to a single field.
type ValidationError struct {
	FieldErrors map[string]string
	Errors      []string
}

// NewValidationError returns an empty ValidationError ready for use.
func NewValidationError() *ValidationError {
	return &ValidationError{FieldErrors: make(map[string]string)}
}

// AddField records msg for field, keeping the first message per field.
func (e *ValidationError) AddField(field, msg string) {
	if _, ok := e.FieldErrors[field]; ok {
		return
	}
	e.FieldErrors[field] = msg
}

// Add records a non-field message.
func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// Empty reports whether nothing was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.FieldErrors) == 0 && len(e.Errors) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.FieldErrors)+len(e.Errors))
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		parts = append(parts, f+": "+e.FieldErrors[f])
	}
	parts = append(parts, e.Errors...)
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateProductInput checks the field rules that do not need the store.
// Category existence is checked by the usecases.
func ValidateProductInput(in ProductInput) *ValidationError {
	verr := NewValidationError()

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		verr.AddField(InputName, MsgNameRequired)
	case len(name) > maxProductNameLength:
		verr.AddField(InputName, MsgNameTooLong)
	}

	switch {
	case in.Price == nil:
		verr.AddField(InputPrice, MsgPriceRequired)
	case in.Price.LessThan(MinPrice):
		verr.AddField(InputPrice, MsgPriceOutOfRange)
	case !in.Price.Equal(in.Price.Round(priceScale)):
		verr.AddField(InputPrice, MsgPriceScale)
	}

	if in.CategoryID <= 0 {
		verr.AddField(InputCategoryID, MsgCategoryRequired)
	}

	if verr.Empty() {
		return nil
	}
	return verr
}
