package tabular

import (
	"errors"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/tabkit/tabular/pkg/tabularerrors"
)

// StreamingModel is a forward-only tabular model for datasets that do
// not fit in memory. Header rows are read eagerly from the chunk source
// at construction; data rows are yielded lazily during iteration.
//
// Iteration mutates shared state: rows wider than the known column set
// extend the column names and index map mid-stream, so ColumnNames
// observed before and after a full iteration may legitimately differ.
// The underlying source is consumed exactly once; a second iteration
// over a drained model yields nothing. Concurrent iteration over one
// model instance is unsupported.
type StreamingModel struct {
	source        ChunkSource
	headerRows    int
	skipEmptyRows bool
	chunkSize     int

	headerData  [][]string
	columnNames []string
	columnIndex map[string]int
	buffer      [][]string
	initialized bool
	exhausted   bool
	err         error
	logger      *zap.Logger
}

// NewStreamingModel builds a streaming model over src. Header rows are
// pulled from the source immediately, collecting across chunk
// boundaries when needed; the remaining rows of the chunk that
// completed the header are buffered for iteration. With zero header
// rows exactly one chunk is consumed and column names are generated
// from the first buffered row's width.
func NewStreamingModel(src ChunkSource, opts ...Option) (*StreamingModel, error) {
	o := defaultModelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if src == nil {
		return nil, tabularerrors.New(tabularerrors.KindType, "chunk source is required").
			WithDetail("param", "source")
	}
	if o.headerRows < 0 {
		return nil, tabularerrors.Newf(tabularerrors.KindValue, "header rows must be >= 0, got %d", o.headerRows).
			WithDetail("param", "header_rows").
			WithDetail("value", o.headerRows)
	}
	if o.chunkSize < MinChunkSize {
		return nil, tabularerrors.Newf(tabularerrors.KindValue, "chunk size must be at least %d, got %d", MinChunkSize, o.chunkSize).
			WithDetail("param", "chunk_size").
			WithDetail("value", o.chunkSize)
	}

	m := &StreamingModel{
		source:        src,
		headerRows:    o.headerRows,
		skipEmptyRows: o.skipEmptyRows,
		chunkSize:     o.chunkSize,
		buffer:        make([][]string, 0, o.chunkSize),
		logger:        o.logger,
	}

	if err := m.initialize(); err != nil {
		return nil, err
	}
	return m, nil
}

// initialize reads header rows from the source and buffers the
// remainder of the chunk that completed them.
func (m *StreamingModel) initialize() error {
	if m.initialized {
		return nil
	}

	var headerData [][]string
	for len(headerData) < m.headerRows || m.headerRows == 0 {
		chunk, err := m.source.Next()
		if errors.Is(err, io.EOF) {
			m.exhausted = true
			break
		}
		if err != nil {
			return tabularerrors.Wrap(err, tabularerrors.KindInternal, "chunk source failed during initialization")
		}

		i := 0
		for ; i < len(chunk) && len(headerData) < m.headerRows; i++ {
			headerData = append(headerData, chunk[i])
		}
		m.bufferRows(chunk[i:])

		// With headers satisfied (or none requested) the remainder of
		// this chunk is buffered and no further chunks are consumed
		// until iteration begins.
		if len(headerData) >= m.headerRows {
			break
		}
	}

	if m.headerRows > 0 {
		m.headerData, m.columnNames = ProcessHeaders(headerData, m.headerRows)
	} else if len(m.buffer) > 0 {
		m.columnNames = AutoColumnNames(len(m.buffer[0]))
	}

	m.columnIndex = buildColumnIndex(m.columnNames)
	m.initialized = true

	m.logger.Debug("streaming model initialized",
		zap.Int("header_rows", m.headerRows),
		zap.Int("columns", len(m.columnNames)),
		zap.Int("buffered_rows", len(m.buffer)))

	return nil
}

func (m *StreamingModel) bufferRows(rows [][]string) {
	for _, row := range rows {
		if m.skipEmptyRows && ShouldSkipRow(row) {
			continue
		}
		m.buffer = append(m.buffer, row)
	}
}

// ColumnNames returns the currently known column names. Iteration may
// append placeholder names when wider rows are discovered.
func (m *StreamingModel) ColumnNames() []string {
	return m.columnNames
}

// ColumnCount returns the number of currently known columns.
func (m *StreamingModel) ColumnCount() int {
	return len(m.columnNames)
}

// ColumnIndex returns the zero-based position of the named column among
// the currently known columns.
func (m *StreamingModel) ColumnIndex(name string) (int, error) {
	idx, ok := m.columnIndex[name]
	if !ok {
		return 0, tabularerrors.Newf(tabularerrors.KindLookup, "column name %q not found", name).
			WithDetail("column", name)
	}
	return idx, nil
}

// Rows iterates forward over the data rows: buffered rows first, then
// chunks pulled lazily from the source. Each yielded row is padded to
// the known column width; wider rows extend the column set first. The
// buffer is cleared once fully drained. After iteration stops, check
// Err for a source failure.
func (m *StreamingModel) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range m.buffer {
			if !yield(m.normalizeRow(row)) {
				return
			}
		}
		m.buffer = m.buffer[:0]

		if m.exhausted {
			return
		}

		for {
			chunk, err := m.source.Next()
			if errors.Is(err, io.EOF) {
				m.exhausted = true
				return
			}
			if err != nil {
				m.err = tabularerrors.Wrap(err, tabularerrors.KindInternal, "chunk source failed during iteration")
				m.logger.Error("chunk source failed", zap.Error(err))
				return
			}
			for _, row := range chunk {
				if m.skipEmptyRows && ShouldSkipRow(row) {
					continue
				}
				if !yield(m.normalizeRow(row)) {
					return
				}
			}
		}
	}
}

// RowMaps iterates forward over rows keyed by the column names known at
// the time each row is yielded.
func (m *StreamingModel) RowMaps() iter.Seq[map[string]string] {
	return func(yield func(map[string]string) bool) {
		for row := range m.Rows() {
			out := make(map[string]string, len(row))
			for i, value := range row {
				if i >= len(m.columnNames) {
					break
				}
				out[m.columnNames[i]] = value
			}
			if !yield(out) {
				return
			}
		}
	}
}

// normalizeRow pads a copy of raw to the known column width, first
// extending the column names and index map when raw is wider.
func (m *StreamingModel) normalizeRow(raw []string) []string {
	for len(m.columnNames) < len(raw) {
		name := AutoColumnName(len(m.columnNames))
		m.columnIndex[name] = len(m.columnNames)
		m.columnNames = append(m.columnNames, name)
		m.logger.Debug("column set extended", zap.String("column", name))
	}
	row := make([]string, len(m.columnNames))
	copy(row, raw)
	return row
}

// Err returns the source error that terminated iteration, if any.
func (m *StreamingModel) Err() error {
	return m.err
}

// ClearBuffer drops buffered rows without affecting initialization
// state. Dropped rows are not yielded by subsequent iteration.
func (m *StreamingModel) ClearBuffer() {
	m.buffer = m.buffer[:0]
}

// ResetStream clears the buffer and the initialization flag. It does
// not rewind the underlying source: rows already consumed are gone, and
// re-reading requires a new model over a fresh source.
func (m *StreamingModel) ResetStream() {
	m.buffer = m.buffer[:0]
	m.initialized = false
}
