package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field constants for change tracking
const (
	FieldName       = "name"
	FieldPrice      = "price"
	FieldCategoryID = "category_id"
)

// MinPrice is the smallest accepted product price (inclusive).
var MinPrice = decimal.RequireFromString("0.01")

// Product is the aggregate root for the catalog administration domain.
// A product always references exactly one category.
type Product struct {
	id         int64
	name       string
	price      decimal.Decimal
	categoryID int64
	version    int64
	createdAt  time.Time
	updatedAt  time.Time
	changes    *ChangeTracker
	events     []DomainEvent
}

// NewProduct validates the input and creates a product that has not been
// persisted yet. The id stays zero until the store assigns one.
func NewProduct(in ProductInput, now time.Time) (*Product, error) {
	if verr := ValidateProductInput(in); verr != nil {
		return nil, verr
	}

	p := &Product{
		name:       strings.TrimSpace(in.Name),
		price:      in.Price.Round(priceScale),
		categoryID: in.CategoryID,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		Name:       p.name,
		Price:      p.price,
		CategoryID: p.categoryID,
		CreatedAt:  now,
	})

	return p, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
func ReconstructProduct(
	id int64,
	name string,
	price decimal.Decimal,
	categoryID, version int64,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:         id,
		name:       name,
		price:      price,
		categoryID: categoryID,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) CategoryID() int64 {
	return p.categoryID
}

func (p *Product) Version() int64 {
	return p.version
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// AssignID records the store-generated identity. Events raised before the
// product had an id are stamped with it so outbox rows carry the real key.
func (p *Product) AssignID(id int64) {
	p.id = id
	for _, ev := range p.events {
		if created, ok := ev.(*ProductCreatedEvent); ok {
			created.ProductID = id
		}
	}
}

// Business Methods

// Replace overwrites name, price and category in one step. The stored row is
// replaced as a whole; the change tracker only records which values differ so
// that the update event carries a meaningful diff.
func (p *Product) Replace(in ProductInput, now time.Time) error {
	if verr := ValidateProductInput(in); verr != nil {
		return verr
	}

	name := strings.TrimSpace(in.Name)
	if name != p.name {
		p.changes.Record(FieldName, p.name, name)
		p.name = name
	}
	if price := in.Price.Round(priceScale); !price.Equal(p.price) {
		p.changes.Record(FieldPrice, p.price.String(), price.String())
		p.price = price
	}
	if in.CategoryID != p.categoryID {
		p.changes.Record(FieldCategoryID, p.categoryID, in.CategoryID)
		p.categoryID = in.CategoryID
	}

	p.updatedAt = now
	p.events = append(p.events, &ProductUpdatedEvent{
		ProductID: p.id,
		UpdatedAt: now,
		Changes:   p.changes.Changes(),
	})

	return nil
}

// ClearEvents clears the accumulated domain events.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
