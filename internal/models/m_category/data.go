package m_category

import "cloud.google.com/go/spanner"

// InsertMutation builds the Spanner insert for a category row.
func InsertMutation(categoryID int64, name string) *spanner.Mutation {
	return spanner.Insert(TableName, []string{ColCategoryID, ColName}, []interface{}{categoryID, name})
}
