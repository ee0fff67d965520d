// Package rows provides the field-map row shape produced by tabular data
// sources, plus CSV readers with pattern-based file discovery.
package rows

import (
	"strconv"
	"strings"
)

// Row is one parsed record: a mapping of column name to raw string value.
// Consumers must tolerate any subset of columns.
type Row map[string]string

// Get returns the trimmed value of the given column, or "" when absent.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// First returns the first non-empty value among the given column aliases.
// Schema variants name the same field differently (e.g. "parent" vs
// "parent_id"), so lookups go through aliases.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// Int parses the given column as an integer, returning def when the column
// is absent or unparsable. Malformed numbers never raise.
func (r Row) Int(key string, def int) int {
	v := r.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
