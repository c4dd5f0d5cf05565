package m_product

import (
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map must not include product_id; it is prepended as the key column.
func UpdateMutation(productID int64, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation removes a product row. Deleting a missing key is a no-op in Spanner.
func DeleteMutation(productID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(productID int64, name string, price decimal.Decimal, categoryID, version int64,
	createdAt, updatedAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColProductID:  productID,
		ColName:       name,
		ColPrice:      PriceToNumeric(price),
		ColCategoryID: categoryID,
		ColVersion:    version,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}
}

// BuildReplaceMap holds every column an update overwrites.
func BuildReplaceMap(name string, price decimal.Decimal, categoryID, version int64, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColName:       name,
		ColPrice:      PriceToNumeric(price),
		ColCategoryID: categoryID,
		ColVersion:    version,
		ColUpdatedAt:  updatedAt,
	}
}

// PriceToNumeric converts a decimal price into the value Spanner expects for NUMERIC columns.
func PriceToNumeric(d decimal.Decimal) big.Rat {
	return *d.Rat()
}

// PriceFromNumeric converts a Spanner NUMERIC back into a decimal price.
func PriceFromNumeric(r big.Rat) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(r.FloatString(NumericScale))
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert numeric %s: %w", r.String(), err)
	}
	return d, nil
}
