package domain

import "errors"

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrConcurrencyConflict indicates the product changed after the caller read it.
	ErrConcurrencyConflict = errors.New("product was modified by another request")
)

// Domain errors for Category references
var (
	// ErrCategoryNotFound indicates the referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence marks a store failure that is reported to callers
	// only as a generic message.
	ErrPersistence = errors.New("unable to save changes")
)
