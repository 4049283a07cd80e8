package tabular

import (
	"iter"

	"github.com/tabkit/tabular/pkg/schema"
)

// TabularData is the accessor contract of a fully materialized model.
type TabularData interface {
	ColumnNames() []string
	ColumnCount() int
	RowCount() int
	ColumnIndex(name string) (int, error)
	ColumnType(name string) (schema.DataType, error)
	ColumnValues(name string) ([]string, error)
	CellValue(name string, rowIndex int) (string, error)
	Row(index int) ([]string, error)
	RowCopy(index int) ([]string, error)
	RowMap(index int) (map[string]string, error)
	Rows() iter.Seq[[]string]
	RowMaps() iter.Seq[map[string]string]
}

// StreamingTabularData is the accessor contract of a forward-only
// streaming model. Column names observed before and after iteration may
// legitimately differ because wide rows extend the schema mid-stream.
type StreamingTabularData interface {
	ColumnNames() []string
	ColumnCount() int
	ColumnIndex(name string) (int, error)
	Rows() iter.Seq[[]string]
	RowMaps() iter.Seq[map[string]string]
	Err() error
	ClearBuffer()
	ResetStream()
}

var (
	_ TabularData          = (*Model)(nil)
	_ StreamingTabularData = (*StreamingModel)(nil)
)
