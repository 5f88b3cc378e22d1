// Package frame provides a minimal ordered string table.
//
// Pipeline stages hand a *Frame forward one at a time; a stage finishes
// writing before the next one reads, so no locking is involved.
package frame

import (
	"strings"
)

// Frame is a rectangular table with named columns. Cells are strings;
// an empty string denotes a missing value.
type Frame struct {
	Cols []string
	Rows [][]string
}

// New creates a Frame from a header and data rows. Short rows are
// padded with empty cells so every row has the same width.
func New(cols []string, rows [][]string) *Frame {
	f := &Frame{Cols: cols, Rows: rows}
	for i, row := range f.Rows {
		for len(row) < len(cols) {
			row = append(row, "")
		}
		f.Rows[i] = row[:len(cols)]
	}
	return f
}

// Empty reports whether the frame has no columns or no rows.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Cols) == 0 || len(f.Rows) == 0
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// Col returns the index of a named column. Header comparison is
// case-insensitive because upstream exports are not consistent about it.
func (f *Frame) Col(name string) (int, bool) {
	for i, c := range f.Cols {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return i, true
		}
	}
	return 0, false
}

// Column returns all values of a named column in row order.
func (f *Frame) Column(name string) ([]string, bool) {
	idx, ok := f.Col(name)
	if !ok {
		return nil, false
	}
	res := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		res[i] = row[idx]
	}
	return res, true
}

// AddColumn appends a new column with the given values. Values beyond
// the row count are dropped; missing tail values become empty cells.
func (f *Frame) AddColumn(name string, vals []string) {
	f.Cols = append(f.Cols, name)
	for i := range f.Rows {
		v := ""
		if i < len(vals) {
			v = vals[i]
		}
		f.Rows[i] = append(f.Rows[i], v)
	}
}

// Filter returns a new Frame keeping only rows where keep[i] is true.
// Column order and row order are preserved.
func (f *Frame) Filter(keep []bool) *Frame {
	res := &Frame{Cols: f.Cols}
	for i, row := range f.Rows {
		if i < len(keep) && keep[i] {
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}
