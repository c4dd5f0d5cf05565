package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID  = "product_id"
	ColName       = "name"
	ColPrice      = "price"
	ColCategoryID = "category_id"
	ColVersion    = "version"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated_at"
)

// NumericScale is the number of fractional digits kept when a Spanner
// NUMERIC is turned back into a decimal.
const NumericScale = 9
