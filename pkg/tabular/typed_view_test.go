package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabkit/tabular/pkg/schema"
)

func typedFixture(t *testing.T, rows [][]string, overrides map[schema.DataType]interface{}) *TypedView {
	t.Helper()
	m, err := NewModel(rows)
	require.NoError(t, err)
	return m.Typed(overrides)
}

func TestTypedViewColumnTypes(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"age", "salary", "active", "joined", "note"},
		{"28", "75000.50", "true", "2023-01-15", "hello"},
		{"34", "82000", "false", "2024-06-01", "world"},
		{"22", "61500.25", "true", "2022-11-30", "again"},
	}, nil)

	cases := map[string]schema.DataType{
		"age":    schema.TypeInteger,
		"salary": schema.TypeFloat,
		"active": schema.TypeBoolean,
		"joined": schema.TypeDate,
		"note":   schema.TypeString,
	}
	for name, want := range cases {
		got, err := v.ColumnType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "column %s", name)
	}
}

func TestTypedViewSubstantivePrecedence(t *testing.T) {
	// Blanks and null tokens must not drag a consistent column to mixed:
	// inference prefers the substantive subset.
	v := typedFixture(t, [][]string{
		{"age"},
		{"28"},
		{""},
		{"NULL"},
		{"34"},
	}, nil)

	got, err := v.ColumnType("age")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeInteger, got)

	// The untyped model profiles the full value set and sees the blanks.
	m, err := NewModel([][]string{{"age"}, {"28"}, {""}, {"NULL"}, {"34"}})
	require.NoError(t, err)
	full, err := m.ColumnType("age")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeMixed, full)
}

func TestTypedViewMixedColumn(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"value"},
		{"28"},
		{"NYC"},
	}, nil)

	got, err := v.ColumnType("value")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeMixed, got)

	// Mixed never parses: substantive cells pass through raw.
	values, err := v.ColumnValues("value")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"28", "NYC"}, values)
}

func TestTypedViewConversionDefaults(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"age", "salary", "active"},
		{"28", "75000.50", "true"},
		{"", "", ""},
		{"NULL", "N/A", "null"},
		{"34", "82000", "false"},
	}, nil)

	ages, err := v.ColumnValues("age")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(28), int64(0), int64(0), int64(34)}, ages)

	salaries, err := v.ColumnValues("salary")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{75000.50, float64(0), float64(0), float64(82000)}, salaries)

	actives, err := v.ColumnValues("active")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{true, false, false, false}, actives)
}

func TestTypedViewDateConversion(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"joined"},
		{"2024-01-15"},
		{""},
	}, nil)

	values, err := v.ColumnValues("joined")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), values[0])
	assert.Nil(t, values[1])
}

func TestTypedViewOverrideAsymmetry(t *testing.T) {
	rows := [][]string{
		{"age", "active", "tag"},
		{"28", "true", "x"},
		{"", "", ""},
		{"NULL", "NULL", "NULL"},
	}

	v := typedFixture(t, rows, map[schema.DataType]interface{}{
		schema.TypeInteger: int64(-1),
		schema.TypeBoolean: true,
		schema.TypeString:  "missing",
	})

	// Integer and string take the override on their empty default, and
	// the none default stays untouched only for boolean/mixed types; for
	// all others the none default remains the built-in.
	ages, err := v.ColumnValues("age")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(28), int64(-1), int64(0)}, ages)

	tags, err := v.ColumnValues("tag")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"x", "missing", ""}, tags)

	// Boolean takes the override on its none default; the empty default
	// is not overridable and stays false.
	actives, err := v.ColumnValues("active")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{true, false, true}, actives)
}

func TestTypedViewMixedNoneOverride(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"value"},
		{"28"},
		{"NYC"},
		{"NULL"},
		{""},
	}, map[schema.DataType]interface{}{
		schema.TypeMixed: "absent",
	})

	values, err := v.ColumnValues("value")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"28", "NYC", "absent", ""}, values)
}

func TestTypedViewRowShapes(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"age", "name"},
		{"28", "John"},
		{"34", "Jane"},
	}, nil)

	row, err := v.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(34), "Jane"}, row)

	asMap, err := v.RowMap(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"age": int64(34), "name": "Jane"}, asMap)

	var rows [][]interface{}
	for r := range v.Rows() {
		rows = append(rows, r)
	}
	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{int64(28), "John"}, rows[0])

	var maps []map[string]interface{}
	for r := range v.RowMaps() {
		maps = append(maps, r)
	}
	require.Len(t, maps, 2)
	assert.Equal(t, int64(28), maps[0]["age"])
}

func TestTypedViewCellValue(t *testing.T) {
	v := typedFixture(t, [][]string{
		{"age"},
		{"28"},
	}, nil)

	cell, err := v.CellValue("age", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(28), cell)

	_, err = v.CellValue("age", 1)
	assert.Error(t, err)

	_, err = v.CellValue("missing", 0)
	assert.Error(t, err)
}

func TestTypedViewDoesNotMutateModel(t *testing.T) {
	m, err := NewModel([][]string{{"age"}, {"28"}})
	require.NoError(t, err)

	v := m.Typed(nil)
	_, err = v.ColumnType("age")
	require.NoError(t, err)

	raw, err := m.CellValue("age", 0)
	require.NoError(t, err)
	assert.Equal(t, "28", raw)
}
