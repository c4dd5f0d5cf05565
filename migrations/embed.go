// Package migrations holds the initial schema for every supported backend.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed spanner/*.sql sqlite/*.sql postgres/*.sql
var files embed.FS

// Statements returns the DDL statements for backend ("spanner", "sqlite" or
// "postgres") in file order, split on ';'.
func Statements(backend string) ([]string, error) {
	names, err := fs.Glob(files, backend+"/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations for %s: %w", backend, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no migrations for backend %q", backend)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, splitDDL(string(b))...)
	}
	return out, nil
}

func splitDDL(sql string) []string {
	// normalize line endings
	sql = strings.ReplaceAll(sql, "\r\n", "\n")
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
