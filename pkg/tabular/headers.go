package tabular

import (
	"strings"

	stringutil "github.com/tabkit/tabular/pkg/strings"
)

// ProcessHeaders derives column names from the designated header rows.
//
// With count == 0 or no header data it returns (nil, nil). With
// count == 1 the header data is passed through unchanged and names come
// from the first row's trimmed cells, sized to the widest header row;
// blank cells become positional column_<i> names. With count > 1 the
// per-position cells of the header rows are trimmed and joined with
// "_", skipping blank cells, and the output collapses to a single
// merged row that doubles as the column name list.
func ProcessHeaders(headerData [][]string, count int) ([][]string, []string) {
	if count <= 0 || len(headerData) == 0 {
		return nil, nil
	}

	width := 0
	for _, row := range headerData {
		if len(row) > width {
			width = len(row)
		}
	}

	if count == 1 {
		names := make([]string, width)
		first := headerData[0]
		for i := range names {
			if i < len(first) && !stringutil.IsEmptyLike(first[i]) {
				names[i] = strings.TrimSpace(first[i])
			} else {
				names[i] = AutoColumnName(i)
			}
		}
		return headerData, names
	}

	merged := make([]string, width)
	for i := range merged {
		parts := make([]string, 0, len(headerData))
		for _, row := range headerData {
			if i >= len(row) || stringutil.IsEmptyLike(row[i]) {
				continue
			}
			parts = append(parts, strings.TrimSpace(row[i]))
		}
		if len(parts) == 0 {
			merged[i] = AutoColumnName(i)
		} else {
			merged[i] = strings.Join(parts, "_")
		}
	}

	names := make([]string, width)
	copy(names, merged)
	return [][]string{merged}, names
}
