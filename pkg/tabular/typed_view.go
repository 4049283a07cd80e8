package tabular

import (
	"iter"

	"github.com/tabkit/tabular/pkg/schema"
	stringutil "github.com/tabkit/tabular/pkg/strings"
)

// typeDefaults holds the substitution values a type uses for empty-like
// and none-like cells.
type typeDefaults struct {
	empty interface{}
	none  interface{}
}

// TypedView is a read-only wrapper over a Model that converts string
// cells to semantic values according to each column's inferred type.
// Column types are resolved lazily, preferring the substantive
// (non-empty, non-none) value subset, and cached per view.
type TypedView struct {
	model    *Model
	defaults map[schema.DataType]typeDefaults
	types    map[string]schema.DataType
}

func newTypedView(model *Model, overrides map[schema.DataType]interface{}) *TypedView {
	defaults := map[schema.DataType]typeDefaults{
		schema.TypeBoolean:  {empty: false, none: false},
		schema.TypeInteger:  {empty: int64(0), none: int64(0)},
		schema.TypeFloat:    {empty: float64(0), none: float64(0)},
		schema.TypeDate:     {empty: nil, none: nil},
		schema.TypeDateTime: {empty: nil, none: nil},
		schema.TypeTime:     {empty: nil, none: nil},
		schema.TypeString:   {empty: "", none: ""},
		schema.TypeMixed:    {empty: "", none: nil},
		schema.TypeEmpty:    {empty: "", none: ""},
		schema.TypeNone:     {empty: nil, none: nil},
	}

	// Boolean and mixed take their override on the none default, every
	// other type on the empty default. The asymmetry is deliberate;
	// generalizing it would silently change conversion results for
	// existing callers.
	for dt, value := range overrides {
		d, ok := defaults[dt]
		if !ok {
			continue
		}
		if dt == schema.TypeBoolean || dt == schema.TypeMixed {
			d.none = value
		} else {
			d.empty = value
		}
		defaults[dt] = d
	}

	return &TypedView{
		model:    model,
		defaults: defaults,
		types:    make(map[string]schema.DataType),
	}
}

// ColumnNames returns the column names in order.
func (v *TypedView) ColumnNames() []string {
	return v.model.ColumnNames()
}

// ColumnCount returns the number of data columns.
func (v *TypedView) ColumnCount() int {
	return v.model.ColumnCount()
}

// RowCount returns the number of data rows.
func (v *TypedView) RowCount() int {
	return v.model.RowCount()
}

// ColumnIndex returns the zero-based position of the named column.
func (v *TypedView) ColumnIndex(name string) (int, error) {
	return v.model.ColumnIndex(name)
}

// ColumnType resolves and caches the named column's type. Inference
// runs first over the substantive values; only when that subset is
// empty or inconsistent does it fall back to the full value set, which
// may resolve to mixed, empty, or none.
func (v *TypedView) ColumnType(name string) (schema.DataType, error) {
	if t, ok := v.types[name]; ok {
		return t, nil
	}

	values, err := v.model.ColumnValues(name)
	if err != nil {
		return "", err
	}

	substantive := make([]string, 0, len(values))
	for _, value := range values {
		if stringutil.IsEmptyLike(value) || stringutil.IsNoneLike(value) {
			continue
		}
		substantive = append(substantive, value)
	}

	if len(substantive) > 0 {
		if t := v.model.engine.ProfileValues(substantive); t != schema.TypeMixed {
			v.types[name] = t
			return t, nil
		}
	}

	t := v.model.engine.ProfileValues(values)
	v.types[name] = t
	return t, nil
}

// ColumnValues returns the named column converted per its inferred type.
func (v *TypedView) ColumnValues(name string) ([]interface{}, error) {
	t, err := v.ColumnType(name)
	if err != nil {
		return nil, err
	}
	raw, err := v.model.ColumnValues(name)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(raw))
	for i, value := range raw {
		values[i] = v.convert(value, t)
	}
	return values, nil
}

// CellValue returns the converted value at the named column and row index.
func (v *TypedView) CellValue(name string, rowIndex int) (interface{}, error) {
	t, err := v.ColumnType(name)
	if err != nil {
		return nil, err
	}
	raw, err := v.model.CellValue(name, rowIndex)
	if err != nil {
		return nil, err
	}
	return v.convert(raw, t), nil
}

// Row returns the converted row at index.
func (v *TypedView) Row(index int) ([]interface{}, error) {
	raw, err := v.model.Row(index)
	if err != nil {
		return nil, err
	}
	return v.convertRow(raw)
}

// RowMap returns the converted row at index keyed by column name.
func (v *TypedView) RowMap(index int) (map[string]interface{}, error) {
	row, err := v.Row(index)
	if err != nil {
		return nil, err
	}
	names := v.model.ColumnNames()
	out := make(map[string]interface{}, v.model.ColumnCount())
	for i := 0; i < v.model.ColumnCount() && i < len(row); i++ {
		out[names[i]] = row[i]
	}
	return out, nil
}

// Rows iterates over converted rows in order.
func (v *TypedView) Rows() iter.Seq[[]interface{}] {
	return func(yield func([]interface{}) bool) {
		for raw := range v.model.Rows() {
			row, err := v.convertRow(raw)
			if err != nil {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

// RowMaps iterates over converted rows keyed by column name.
func (v *TypedView) RowMaps() iter.Seq[map[string]interface{}] {
	return func(yield func(map[string]interface{}) bool) {
		names := v.model.ColumnNames()
		for row := range v.Rows() {
			out := make(map[string]interface{}, v.model.ColumnCount())
			for i := 0; i < v.model.ColumnCount() && i < len(row); i++ {
				out[names[i]] = row[i]
			}
			if !yield(out) {
				return
			}
		}
	}
}

func (v *TypedView) convertRow(raw []string) ([]interface{}, error) {
	names := v.model.ColumnNames()
	row := make([]interface{}, len(raw))
	for i, value := range raw {
		t, err := v.ColumnType(names[i])
		if err != nil {
			return nil, err
		}
		row[i] = v.convert(value, t)
	}
	return row, nil
}

// convert maps a raw cell to its semantic value. None-like cells take
// the type's none default and empty-like cells its empty default; a
// substantive cell is parsed per the type, falling back to the empty
// default when parsing fails. Mixed never parses: substantive cells
// pass through as raw strings.
func (v *TypedView) convert(value string, t schema.DataType) interface{} {
	d, ok := v.defaults[t]
	if !ok {
		d = typeDefaults{}
	}

	if t == schema.TypeMixed {
		switch {
		case stringutil.IsNoneLike(value):
			return d.none
		case stringutil.IsEmptyLike(value):
			return d.empty
		default:
			return value
		}
	}

	if stringutil.IsNoneLike(value) {
		return d.none
	}
	if stringutil.IsEmptyLike(value) {
		return d.empty
	}

	switch t {
	case schema.TypeBoolean:
		def, _ := d.empty.(bool)
		return stringutil.ToBool(value, def)
	case schema.TypeInteger:
		def, _ := d.empty.(int64)
		return stringutil.ToInt(value, def)
	case schema.TypeFloat:
		def, _ := d.empty.(float64)
		return stringutil.ToFloat(value, def)
	case schema.TypeDate:
		if parsed, err := stringutil.ParseDate(value); err == nil {
			return parsed
		}
		return d.empty
	case schema.TypeDateTime:
		if parsed, err := stringutil.ParseDateTime(value); err == nil {
			return parsed
		}
		return d.empty
	case schema.TypeTime:
		if parsed, err := stringutil.ParseTime(value); err == nil {
			return parsed
		}
		return d.empty
	default:
		return value
	}
}
