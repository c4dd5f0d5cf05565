package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DomainEvent is a marker interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is created.
// ProductID is filled in once the store has assigned the id.
type ProductCreatedEvent struct {
	ProductID  int64
	Name       string
	Price      decimal.Decimal
	CategoryID int64
	CreatedAt  time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// ProductUpdatedEvent is raised when a product is replaced.
// Changes is empty when the caller resubmitted identical values.
type ProductUpdatedEvent struct {
	ProductID int64
	UpdatedAt time.Time
	Changes   map[string]FieldChange
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// ProductDeletedEvent is raised when a product row is removed.
type ProductDeletedEvent struct {
	ProductID int64
	DeletedAt time.Time
}

// NewProductDeletedEvent builds the event for a hard delete; the aggregate
// is not loaded on that path.
func NewProductDeletedEvent(productID int64, now time.Time) *ProductDeletedEvent {
	return &ProductDeletedEvent{ProductID: productID, DeletedAt: now}
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
