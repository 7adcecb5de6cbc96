package inventory

import (
	"fmt"
	"strings"
)

// columnClass determines how search input is matched against a column.
type columnClass int

const (
	// columnInt columns match only when the input is all digits and
	// equals the stored value exactly.
	columnInt columnClass = iota
	// columnDate columns are formatted as YYYY-MM-DD text and then
	// pattern-matched like text columns.
	columnDate
	// columnText columns are pattern-matched case-insensitively.
	columnText
)

// searchColumns is the explicit registry of searchable columns.
// Search requests naming anything else fail with ErrUnknownColumn
// at the boundary instead of being resolved reflectively.
var searchColumns = map[string]columnClass{
	"id":            columnInt,
	"x_for":         columnInt,
	"quantity":      columnInt,
	"reorder_point": columnInt,
	"last_sold":     columnDate,
	"date_added":    columnDate,
	"description":   columnText,
	"shelf_life":    columnText,
	"department":    columnText,
	"price":         columnText,
	"unit":          columnText,
	"cost":          columnText,
}

// resolveColumn validates a column name against the registry.
func resolveColumn(name string) (columnClass, error) {
	class, ok := searchColumns[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return class, nil
}

// buildPattern translates user search text into a SQL LIKE pattern.
//
// Input containing * or _ is treated as a glob: literal _ is escaped,
// * becomes the many-wildcard and ? the single-wildcard. Otherwise a
// trailing "s" is stripped and the remainder substring-matched, so
// "apples" still finds "apple". Plain text becomes a substring match.
func buildPattern(s string) string {
	if strings.ContainsAny(s, "*_") {
		s = strings.ReplaceAll(s, "_", "__")
		s = strings.ReplaceAll(s, "*", "%")
		return strings.ReplaceAll(s, "?", "_")
	}
	if strings.HasSuffix(s, "s") {
		return "%" + strings.TrimSuffix(s, "s") + "%"
	}
	return "%" + s + "%"
}

// isAllDigits reports whether s is non-empty and composed entirely of
// decimal digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
