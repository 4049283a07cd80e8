package tabular

import "io"

// ChunkSource supplies successive chunks of rows to a StreamingModel.
// Next returns io.EOF when the source is drained; any other error stops
// iteration and is surfaced through StreamingModel.Err. A source is
// consumed exactly once and is not rewindable.
type ChunkSource interface {
	Next() ([][]string, error)
}

// ChunkSourceFunc adapts a function to the ChunkSource interface.
type ChunkSourceFunc func() ([][]string, error)

// Next calls f.
func (f ChunkSourceFunc) Next() ([][]string, error) {
	return f()
}

// SliceSource is a ChunkSource over an in-memory chunk slice, useful in
// tests and for feeding already-materialized data through the streaming
// path.
type SliceSource struct {
	chunks [][][]string
	pos    int
}

// NewSliceSource creates a SliceSource yielding the given chunks in order.
func NewSliceSource(chunks ...[][]string) *SliceSource {
	return &SliceSource{chunks: chunks}
}

// Next returns the next chunk, or io.EOF once all chunks are consumed.
func (s *SliceSource) Next() ([][]string, error) {
	if s.pos >= len(s.chunks) {
		return nil, io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}
