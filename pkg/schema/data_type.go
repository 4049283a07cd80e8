// Package schema provides semantic type classification for tabular
// string data: a DataType enumeration and an inference engine that
// profiles a column's values into a single inferred type.
package schema

import (
	"github.com/tabkit/tabular/pkg/tabularerrors"
)

// DataType is the inferred semantic type of a column of string values.
type DataType string

const (
	// TypeInteger covers values that parse as base-10 integers.
	TypeInteger DataType = "integer"
	// TypeFloat covers decimal numbers, including integer-looking ones
	// when at least one value carries a fractional part.
	TypeFloat DataType = "float"
	// TypeBoolean covers recognized boolean tokens.
	TypeBoolean DataType = "boolean"
	// TypeDate covers calendar dates without a time component.
	TypeDate DataType = "date"
	// TypeDateTime covers full timestamps.
	TypeDateTime DataType = "datetime"
	// TypeTime covers times of day without a date component.
	TypeTime DataType = "time"
	// TypeString covers substantive values with no narrower type.
	TypeString DataType = "string"
	// TypeMixed covers columns whose values span incompatible types.
	TypeMixed DataType = "mixed"
	// TypeEmpty covers columns whose values are all blank.
	TypeEmpty DataType = "empty"
	// TypeNone covers columns whose values are all null tokens.
	TypeNone DataType = "none"
)

// String returns the lowercase name of the type.
func (t DataType) String() string {
	return string(t)
}

// ParseDataType resolves a type name, as used in configuration files,
// to a DataType.
func ParseDataType(name string) (DataType, error) {
	switch DataType(name) {
	case TypeInteger, TypeFloat, TypeBoolean, TypeDate, TypeDateTime,
		TypeTime, TypeString, TypeMixed, TypeEmpty, TypeNone:
		return DataType(name), nil
	}
	return "", tabularerrors.Newf(tabularerrors.KindValue, "unknown data type %q", name).
		WithDetail("param", "type").
		WithDetail("value", name)
}
