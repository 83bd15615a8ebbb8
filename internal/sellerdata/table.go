package sellerdata

import (
	"strings"
)

// Table holds one worksheet of seller data in memory: a header row and
// the records under it. Headers are trimmed of surrounding whitespace on
// construction and every row is normalized to header width, so positional
// access through ColumnIndex is always in bounds.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Group is one partition of a table's rows sharing a cell value.
type Group struct {
	Key  string
	Rows [][]string
}

// NewTable builds a table from a raw header row and data rows.
// Duplicate headers keep the first occurrence's position.
func NewTable(header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		columns[i] = name
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	width := len(columns)
	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > width {
			row = row[:width]
		} else if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		normalized = append(normalized, row)
	}

	return &Table{
		columns: columns,
		index:   index,
		rows:    normalized,
	}
}

// Columns returns the trimmed header names in sheet order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the normalized data rows.
func (t *Table) Rows() [][]string {
	return t.rows
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// MissingColumns returns the subset of required column names the table
// does not have, in the order given.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// GroupBy partitions the rows by the named column's value, preserving
// first-seen source order of the keys and source order within each group.
func (t *Table) GroupBy(column string) ([]Group, bool) {
	idx, ok := t.index[column]
	if !ok {
		return nil, false
	}

	byKey := make(map[string]int)
	var groups []Group
	for _, row := range t.rows {
		key := row[idx]
		pos, seen := byKey[key]
		if !seen {
			pos = len(groups)
			byKey[key] = pos
			groups = append(groups, Group{Key: key})
		}
		groups[pos].Rows = append(groups[pos].Rows, row)
	}

	return groups, true
}
