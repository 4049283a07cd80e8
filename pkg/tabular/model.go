package tabular

import (
	"iter"

	"go.uber.org/zap"

	"github.com/tabkit/tabular/pkg/schema"
	"github.com/tabkit/tabular/pkg/tabularerrors"
)

// Model is a fully materialized tabular dataset. It is immutable after
// construction except for the lazily populated column type cache;
// mutating the input slices after construction is unsupported.
type Model struct {
	headerData  [][]string
	data        [][]string
	columnNames []string
	columnIndex map[string]int
	columnTypes map[string]schema.DataType
	columnCount int
	engine      *schema.InferenceEngine
	logger      *zap.Logger
}

// NewModel builds an in-memory model from raw rows. The first
// headerRows rows (default 1) become column names via ProcessHeaders,
// the remaining rows are normalized to a uniform width, and column
// names are padded with positional placeholders up to the data's
// column count.
func NewModel(data [][]string, opts ...Option) (*Model, error) {
	o := defaultModelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(data) == 0 {
		return nil, tabularerrors.New(tabularerrors.KindValue, "data cannot be empty").
			WithDetail("param", "data")
	}
	if o.headerRows < 0 {
		return nil, tabularerrors.Newf(tabularerrors.KindValue, "header rows must be >= 0, got %d", o.headerRows).
			WithDetail("param", "header_rows").
			WithDetail("value", o.headerRows)
	}

	headerEnd := o.headerRows
	if headerEnd > len(data) {
		headerEnd = len(data)
	}
	headerData := data[:headerEnd]
	rows := NormalizeRows(data[headerEnd:], o.skipEmptyRows)

	columnCount := 0
	if len(rows) > 0 {
		columnCount = len(rows[0])
	}

	processedHeaders, columnNames := ProcessHeaders(headerData, o.headerRows)
	for len(columnNames) < columnCount {
		columnNames = append(columnNames, AutoColumnName(len(columnNames)))
	}

	m := &Model{
		headerData:  processedHeaders,
		data:        rows,
		columnNames: columnNames,
		columnIndex: buildColumnIndex(columnNames),
		columnTypes: make(map[string]schema.DataType),
		columnCount: columnCount,
		engine:      schema.NewInferenceEngine(o.logger),
		logger:      o.logger,
	}

	m.logger.Debug("tabular model constructed",
		zap.Int("rows", len(rows)),
		zap.Int("columns", columnCount),
		zap.Int("header_rows", o.headerRows))

	return m, nil
}

// buildColumnIndex maps names to positions. Duplicate names resolve to
// their last position (last write wins).
func buildColumnIndex(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

// ColumnNames returns the column names in order. The slice is shared;
// callers must not modify it.
func (m *Model) ColumnNames() []string {
	return m.columnNames
}

// ColumnCount returns the number of data columns. Header rows may
// declare more names than the data has columns, never fewer.
func (m *Model) ColumnCount() int {
	return m.columnCount
}

// RowCount returns the number of data rows.
func (m *Model) RowCount() int {
	return len(m.data)
}

// ColumnIndex returns the zero-based position of the named column.
func (m *Model) ColumnIndex(name string) (int, error) {
	idx, ok := m.columnIndex[name]
	if !ok {
		return 0, tabularerrors.Newf(tabularerrors.KindLookup, "column name %q not found", name).
			WithDetail("column", name)
	}
	return idx, nil
}

// ColumnType returns the inferred type of the named column, computed
// over the full value set on first access and cached for the lifetime
// of the model.
func (m *Model) ColumnType(name string) (schema.DataType, error) {
	idx, err := m.ColumnIndex(name)
	if err != nil {
		return "", err
	}
	if t, ok := m.columnTypes[name]; ok {
		return t, nil
	}
	t := m.engine.ProfileValues(m.columnValuesAt(idx))
	m.columnTypes[name] = t
	return t, nil
}

// ColumnValues returns all values of the named column in row order.
func (m *Model) ColumnValues(name string) ([]string, error) {
	idx, err := m.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return m.columnValuesAt(idx), nil
}

// columnValuesAt collects the column at idx, substituting "" for
// columns declared by headers but absent from the data.
func (m *Model) columnValuesAt(idx int) []string {
	values := make([]string, len(m.data))
	for i, row := range m.data {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}

// CellValue returns the value at the named column and row index.
func (m *Model) CellValue(name string, rowIndex int) (string, error) {
	idx, err := m.ColumnIndex(name)
	if err != nil {
		return "", err
	}
	if rowIndex < 0 || rowIndex >= len(m.data) {
		return "", m.rowRangeError(rowIndex)
	}
	row := m.data[rowIndex]
	if idx >= len(row) {
		return "", nil
	}
	return row[idx], nil
}

// Row returns the underlying row slice at index. Callers must not
// modify it; use RowCopy for an independent snapshot.
func (m *Model) Row(index int) ([]string, error) {
	if index < 0 || index >= len(m.data) {
		return nil, m.rowRangeError(index)
	}
	return m.data[index], nil
}

// RowCopy returns an independent copy of the row at index.
func (m *Model) RowCopy(index int) ([]string, error) {
	row, err := m.Row(index)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(row))
	copy(out, row)
	return out, nil
}

// RowMap returns the row at index keyed by column name.
func (m *Model) RowMap(index int) (map[string]string, error) {
	row, err := m.Row(index)
	if err != nil {
		return nil, err
	}
	return m.rowToMap(row), nil
}

func (m *Model) rowToMap(row []string) map[string]string {
	out := make(map[string]string, m.columnCount)
	for i := 0; i < m.columnCount; i++ {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		out[m.columnNames[i]] = value
	}
	return out
}

// Rows iterates over the raw normalized rows in order. Yielded slices
// are the model's own; callers must not modify them.
func (m *Model) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range m.data {
			if !yield(row) {
				return
			}
		}
	}
}

// RowMaps iterates over rows keyed by column name.
func (m *Model) RowMaps() iter.Seq[map[string]string] {
	return func(yield func(map[string]string) bool) {
		for _, row := range m.data {
			if !yield(m.rowToMap(row)) {
				return
			}
		}
	}
}

// Typed returns a typed view over this model. Overrides adjust the
// per-type conversion defaults: TypeBoolean and TypeMixed accept an
// override of their none default, every other type of its empty
// default. The underlying model is not mutated.
func (m *Model) Typed(overrides map[schema.DataType]interface{}) *TypedView {
	return newTypedView(m, overrides)
}

func (m *Model) rowRangeError(index int) error {
	return tabularerrors.Newf(tabularerrors.KindLookup, "row index %d out of range", index).
		WithDetail("index", index).
		WithDetail("max_index", len(m.data)-1)
}
