package dto

import "github.com/shopspring/decimal"

// ProductDTO contains full product fields returned by read queries.
// Timestamps use *string (RFC3339) as they come out of the stores; use the
// utils helpers to parse them into time.Time.
type ProductDTO struct {
	ProductID  int64           `json:"productId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int64           `json:"categoryId"`
	Version    int64           `json:"version"`
	CreatedAt  *string         `json:"createdAt,omitempty"`
	UpdatedAt  *string         `json:"updatedAt,omitempty"`

	// Category is resolved only by the detail and delete-confirm paths.
	Category *CategoryDTO `json:"category,omitempty"`
}

// ProductSummaryDTO is a compact DTO for list queries.
type ProductSummaryDTO struct {
	ProductID  int64           `json:"productId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int64           `json:"categoryId"`
}

// CategoryDTO is a category as read from the store.
type CategoryDTO struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
}

// ProductFilter selects one window of the product list.
// An empty Search matches every product.
type ProductFilter struct {
	Search string
	Limit  int
	Offset int
}

// ProductPage is one page of the product list plus navigation metadata.
type ProductPage struct {
	Items         []*ProductSummaryDTO `json:"items"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"pageSize"`
	TotalCount    int                  `json:"totalCount"`
	TotalPages    int                  `json:"totalPages"`
	HasPrevious   bool                 `json:"hasPrevious"`
	HasNext       bool                 `json:"hasNext"`
	CurrentFilter string               `json:"currentFilter"`
}

// CategoryOption is one entry of a category picker.
type CategoryOption struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Selected   bool   `json:"selected"`
}

// ProductForm is what a caller needs to (re)render a create or edit form:
// the submitted or stored values, the problems found, and the category list.
type ProductForm struct {
	ProductID   int64             `json:"productId,omitempty"`
	Version     int64             `json:"version,omitempty"`
	Name        string            `json:"name"`
	Price       string            `json:"price"`
	CategoryID  int64             `json:"categoryId"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Errors      []string          `json:"errors,omitempty"`
	Categories  []CategoryOption  `json:"categories"`
}
