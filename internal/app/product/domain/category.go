package domain

import (
	"errors"
	"strings"
)

// ErrEmptyCategoryName indicates an attempt to create a category without a name.
var ErrEmptyCategoryName = errors.New("category name cannot be empty")

// Category is reference data; products point at it by id.
type Category struct {
	ID   int64
	Name string
}

// NormalizeCategoryName trims name and rejects blanks.
func NormalizeCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyCategoryName
	}
	return trimmed, nil
}
