package schema

import (
	"go.uber.org/zap"

	stringutil "github.com/tabkit/tabular/pkg/strings"
)

// InferenceEngine classifies column values into a single inferred
// DataType. It is stateless apart from its logger and safe for reuse
// across columns and models.
type InferenceEngine struct {
	logger *zap.Logger
}

// NewInferenceEngine creates an inference engine. A nil logger is
// replaced with a no-op logger.
func NewInferenceEngine(logger *zap.Logger) *InferenceEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InferenceEngine{logger: logger}
}

// defaultEngine backs the package-level helpers.
var defaultEngine = NewInferenceEngine(nil)

// ClassifyValue classifies a single cell value.
func ClassifyValue(value string) DataType {
	return defaultEngine.ClassifyValue(value)
}

// ProfileValues infers the type of a column from all of its values.
func ProfileValues(values []string) DataType {
	return defaultEngine.ProfileValues(values)
}

// ClassifyValue classifies a single cell value. None-like tokens win
// over emptiness, and narrower types are probed before falling back to
// string: boolean, integer, float, time, date, datetime.
func (e *InferenceEngine) ClassifyValue(value string) DataType {
	switch {
	case stringutil.IsNoneLike(value):
		return TypeNone
	case stringutil.IsEmptyLike(value):
		return TypeEmpty
	case stringutil.IsBoolToken(value):
		return TypeBoolean
	case stringutil.IsIntegerLike(value):
		return TypeInteger
	case stringutil.IsFloatLike(value):
		return TypeFloat
	case stringutil.IsTimeLike(value):
		return TypeTime
	case stringutil.IsDateLike(value):
		return TypeDate
	case stringutil.IsDateTimeLike(value):
		return TypeDateTime
	default:
		return TypeString
	}
}

// ProfileValues infers the type of a column from all of its values.
//
// An empty input or all-blank column is TypeEmpty; a column of only
// null tokens is TypeNone (a blend of blanks and null tokens also
// resolves to TypeNone). When substantive values are present the column
// takes their common type: integers and floats unify to TypeFloat,
// dates and datetimes unify to TypeDateTime, and anything else that
// spans more than one type — including substantive values mixed with
// blanks or null tokens — is TypeMixed. Callers that want blanks
// ignored should profile the substantive subset first, the way the
// typed view does.
func (e *InferenceEngine) ProfileValues(values []string) DataType {
	if len(values) == 0 {
		return TypeEmpty
	}

	seen := make(map[DataType]int, 4)
	for _, v := range values {
		seen[e.ClassifyValue(v)]++
	}

	emptyCount := seen[TypeEmpty]
	noneCount := seen[TypeNone]
	substantive := len(seen)
	if emptyCount > 0 {
		substantive--
	}
	if noneCount > 0 {
		substantive--
	}

	if substantive == 0 {
		if noneCount > 0 {
			return TypeNone
		}
		return TypeEmpty
	}

	if emptyCount > 0 || noneCount > 0 {
		// Substantive values interleaved with blanks or null tokens
		// cannot be trusted as one consistent type.
		return TypeMixed
	}

	if substantive == 1 {
		for t := range seen {
			return t
		}
	}

	if substantive == 2 {
		if seen[TypeInteger] > 0 && seen[TypeFloat] > 0 {
			return TypeFloat
		}
		if seen[TypeDate] > 0 && seen[TypeDateTime] > 0 {
			return TypeDateTime
		}
	}

	e.logger.Debug("column values span incompatible types",
		zap.Int("distinct_types", substantive),
		zap.Int("values", len(values)))

	return TypeMixed
}
