package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabkit/tabular/pkg/schema"
	"github.com/tabkit/tabular/pkg/tabularerrors"
)

func sampleData() [][]string {
	return [][]string{
		{"Name", "Age", "City"},
		{"John", "30", "NYC"},
		{"Jane", "25", "LA"},
		{"Bob", "41", "Chicago"},
	}
}

func TestNewModelValidation(t *testing.T) {
	_, err := NewModel(nil)
	require.Error(t, err)
	assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindValue))

	_, err = NewModel([][]string{})
	require.Error(t, err)
	assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindValue))

	_, err = NewModel(sampleData(), WithHeaderRows(-1))
	require.Error(t, err)
	assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindValue))
}

func TestModelBasicAccessors(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Age", "City"}, m.ColumnNames())
	assert.Equal(t, 3, m.ColumnCount())
	assert.Equal(t, 3, m.RowCount())

	idx, err := m.ColumnIndex("Age")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = m.ColumnIndex("Salary")
	require.Error(t, err)
	assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindLookup))

	values, err := m.ColumnValues("Age")
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "25", "41"}, values)

	cell, err := m.CellValue("City", 1)
	require.NoError(t, err)
	assert.Equal(t, "LA", cell)
}

func TestModelMergedHeaders(t *testing.T) {
	data := [][]string{
		{"Personal", "Personal"},
		{"Name", "Age"},
		{"John", "30"},
	}
	m, err := NewModel(data, WithHeaderRows(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Personal_Name", "Personal_Age"}, m.ColumnNames())
}

func TestModelNoHeaders(t *testing.T) {
	m, err := NewModel([][]string{{"a", "b"}, {"c", "d"}}, WithHeaderRows(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"column_0", "column_1"}, m.ColumnNames())
	assert.Equal(t, 2, m.RowCount())
}

func TestModelWidthInvariant(t *testing.T) {
	data := [][]string{
		{"A", "B", "C"},
		{"1"},
		{"2", "3"},
		{"4", "5", "6", "7"},
	}
	m, err := NewModel(data)
	require.NoError(t, err)

	for row := range m.Rows() {
		assert.Len(t, row, m.ColumnCount())
	}
	// The widest row raised the column count beyond the header width;
	// names are padded with placeholders, never fewer than columns.
	assert.GreaterOrEqual(t, len(m.ColumnNames()), m.ColumnCount())
	assert.Equal(t, []string{"A", "B", "C", "column_3"}, m.ColumnNames())
}

func TestModelSkipEmptyRows(t *testing.T) {
	data := [][]string{
		{"Name"},
		{"John"},
		{"  "},
		{"Jane"},
	}
	m, err := NewModel(data)
	require.NoError(t, err)
	assert.Equal(t, 2, m.RowCount())

	m, err = NewModel(data, WithSkipEmptyRows(false))
	require.NoError(t, err)
	assert.Equal(t, 3, m.RowCount())
}

func TestModelRowBounds(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	for _, index := range []int{-1, m.RowCount()} {
		_, err := m.Row(index)
		assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindLookup), "Row(%d)", index)

		_, err = m.CellValue("Name", index)
		assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindLookup), "CellValue(%d)", index)

		_, err = m.RowMap(index)
		assert.True(t, tabularerrors.IsKind(err, tabularerrors.KindLookup), "RowMap(%d)", index)
	}
}

func TestModelRowShapesAgree(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	for i := 0; i < m.RowCount(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		cp, err := m.RowCopy(i)
		require.NoError(t, err)
		asMap, err := m.RowMap(i)
		require.NoError(t, err)

		assert.Equal(t, row, cp)
		for j, name := range m.ColumnNames() {
			assert.Equal(t, row[j], asMap[name])
		}
	}
}

func TestModelRowCopyIsIndependent(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	cp, err := m.RowCopy(0)
	require.NoError(t, err)
	cp[0] = "mutated"

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "John", row[0])
}

func TestModelIteration(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	var rows [][]string
	for row := range m.Rows() {
		rows = append(rows, row)
	}
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"John", "30", "NYC"}, rows[0])

	var maps []map[string]string
	for row := range m.RowMaps() {
		maps = append(maps, row)
	}
	assert.Len(t, maps, 3)
	assert.Equal(t, "25", maps[1]["Age"])
}

func TestModelColumnTypeCached(t *testing.T) {
	m, err := NewModel(sampleData())
	require.NoError(t, err)

	first, err := m.ColumnType("Age")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeInteger, first)

	second, err := m.ColumnType("Age")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestModelHeadersWiderThanData(t *testing.T) {
	data := [][]string{
		{"A", "B", "C"},
		{"1", "2"},
	}
	m, err := NewModel(data)
	require.NoError(t, err)

	assert.Equal(t, 2, m.ColumnCount())
	assert.Equal(t, []string{"A", "B", "C"}, m.ColumnNames())

	// A header-declared column with no data reads as empty.
	cell, err := m.CellValue("C", 0)
	require.NoError(t, err)
	assert.Equal(t, "", cell)

	ct, err := m.ColumnType("C")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeEmpty, ct)
}

func TestModelDuplicateColumnNames(t *testing.T) {
	// Duplicate merged names are permitted; the index map is last write
	// wins, so lookup resolves to the last position. This mirrors the
	// documented ambiguity rather than deduplicating silently.
	data := [][]string{
		{"A", "A"},
		{"left", "right"},
	}
	m, err := NewModel(data)
	require.NoError(t, err)

	idx, err := m.ColumnIndex("A")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	cell, err := m.CellValue("A", 0)
	require.NoError(t, err)
	assert.Equal(t, "right", cell)
}

func TestModelHeaderRowsExceedData(t *testing.T) {
	m, err := NewModel([][]string{{"Only", "Header"}}, WithHeaderRows(3))
	require.NoError(t, err)
	assert.Equal(t, 0, m.RowCount())
	assert.Equal(t, 0, m.ColumnCount())
}
