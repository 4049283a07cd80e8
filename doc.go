// Package tabular is a library for working with rectangular string
// data: multi-row headers, ragged rows, and columns whose semantic
// types must be discovered rather than declared.
//
// The core packages are:
//
//   - pkg/tabular: the in-memory Model (random access, typed views) and
//     the forward-only StreamingModel (chunked, memory-bounded).
//   - pkg/schema: the DataType enumeration and the inference engine
//     that profiles a column's string values into one type.
//   - pkg/strings: cell-value classification and typed parsing.
//   - pkg/tabularerrors: structured errors with kinds and details.
//
// # Quick Start
//
// Build a model from pre-parsed rows and read it through a typed view:
//
//	import "github.com/tabkit/tabular/pkg/tabular"
//
//	model, err := tabular.NewModel(rows, tabular.WithHeaderRows(2))
//	if err != nil {
//	    return err
//	}
//	typed := model.Typed(nil)
//	for row := range typed.RowMaps() {
//	    // cells converted per inferred column type
//	}
//
// For datasets that do not fit in memory, feed a ChunkSource to
// tabular.NewStreamingModel and iterate its Rows exactly once.
//
// The cmd/tabular CLI wraps both models for delimited files, including
// gzip- and zstd-compressed input.
package tabular
