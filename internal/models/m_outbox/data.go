package m_outbox

import (
	"strings"

	"cloud.google.com/go/spanner"
)

// InsertValues returns the row in InsertColumns order. createdAt is a
// time.Time for Spanner and a formatted timestamp for the SQL stores.
func InsertValues(eventID, eventType, aggregateID, payload, status string, createdAt interface{}) []interface{} {
	return []interface{}{eventID, eventType, aggregateID, payload, status, createdAt}
}

// InsertMutation constructs a Spanner mutation for the outbox table.
// processed_at is left NULL until a relay marks the row.
func InsertMutation(values []interface{}) *spanner.Mutation {
	return spanner.Insert(TableName, InsertColumns, values)
}

// InsertSQL renders a positional INSERT with "?" placeholders.
func InsertSQL() string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(InsertColumns)), ", ")
	return "INSERT INTO " + TableName + " (" + strings.Join(InsertColumns, ", ") + ") VALUES (" + marks + ")"
}
