// Package tabular provides two models for rectangular string data: an
// in-memory Model with random access, cached column type inference, and
// a typed view, and a forward-only StreamingModel fed by row chunks for
// datasets that exceed memory.
//
// Both models share the same pipeline: leading rows are merged into
// column names (multi-row headers join per-position cells with "_"),
// data rows are padded to a uniform width, blank rows are optionally
// dropped, and blank header cells become positional column_<i> names.
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
// The streaming model consumes a ChunkSource exactly once; see
// StreamingModel for the forward-only contract.
package tabular
