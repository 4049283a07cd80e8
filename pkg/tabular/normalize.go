package tabular

import (
	"fmt"

	stringutil "github.com/tabkit/tabular/pkg/strings"
)

// columnNamePrefix is the prefix for generated positional column names.
const columnNamePrefix = "column_"

// AutoColumnName returns the generated name for column position i.
func AutoColumnName(i int) string {
	return fmt.Sprintf("%s%d", columnNamePrefix, i)
}

// AutoColumnNames generates positional placeholder names for n columns.
func AutoColumnNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = AutoColumnName(i)
	}
	return names
}

// ShouldSkipRow reports whether a row is blank: zero cells, or every
// cell empty after trimming whitespace.
func ShouldSkipRow(row []string) bool {
	for _, cell := range row {
		if !stringutil.IsEmptyLike(cell) {
			return false
		}
	}
	return true
}

// EnsureMinimumColumns pads row on the right with empty cells until it
// has at least minColumns cells. Rows already at or above the minimum
// are returned unchanged; padding allocates a copy so callers never
// alias a grown slice with the input.
func EnsureMinimumColumns(row []string, minColumns int) []string {
	if len(row) >= minColumns {
		return row
	}
	padded := make([]string, minColumns)
	copy(padded, row)
	return padded
}

// NormalizeRows pads every row to the maximum cell count across the
// surviving rows, optionally dropping blank rows first. Row order is
// preserved and rows are only ever padded, never truncated: a long row
// simply raises the target width for all others.
func NormalizeRows(rows [][]string, skipEmptyRows bool) [][]string {
	survivors := rows
	if skipEmptyRows {
		survivors = make([][]string, 0, len(rows))
		for _, row := range rows {
			if ShouldSkipRow(row) {
				continue
			}
			survivors = append(survivors, row)
		}
	}

	width := 0
	for _, row := range survivors {
		if len(row) > width {
			width = len(row)
		}
	}

	normalized := make([][]string, len(survivors))
	for i, row := range survivors {
		normalized[i] = EnsureMinimumColumns(row, width)
	}
	return normalized
}
