package sqldb

import (
	"strconv"
	"strings"
)

// Dialect hides the few places where SQLite and Postgres SQL differ.
// Queries are written with "?" placeholders and rebound per dialect.
type Dialect struct {
	Name string
}

var (
	SQLite   = Dialect{Name: DriverSQLite}
	Postgres = Dialect{Name: DriverPostgres}
)

// Rebind rewrites "?" placeholders into the dialect's form.
func (d Dialect) Rebind(query string) string {
	if d.Name != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsFold returns a boolean expression that is true when column contains
// the next placeholder's value, ignoring case. Using a position function
// instead of LIKE keeps '%' and '_' in search text literal.
func (d Dialect) ContainsFold(column string) string {
	if d.Name == DriverPostgres {
		return "STRPOS(LOWER(" + column + "), LOWER(?)) > 0"
	}
	return "INSTR(LOWER(" + column + "), LOWER(?)) > 0"
}
