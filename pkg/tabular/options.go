package tabular

import "go.uber.org/zap"

// Default and floor values for the streaming model's chunk size.
const (
	DefaultChunkSize = 1000
	MinChunkSize     = 100
)

type options struct {
	headerRows    int
	skipEmptyRows bool
	chunkSize     int
	logger        *zap.Logger
}

func defaultModelOptions() options {
	return options{
		headerRows:    1,
		skipEmptyRows: true,
		chunkSize:     DefaultChunkSize,
		logger:        zap.NewNop(),
	}
}

// Option configures a Model or StreamingModel.
type Option func(*options)

// WithHeaderRows sets the number of leading rows merged into column
// names. Zero means no headers; placeholder names are generated from
// the first data row's width.
func WithHeaderRows(n int) Option {
	return func(o *options) { o.headerRows = n }
}

// WithSkipEmptyRows controls whether rows whose cells are all blank are
// dropped. Defaults to true.
func WithSkipEmptyRows(skip bool) Option {
	return func(o *options) { o.skipEmptyRows = skip }
}

// WithChunkSize sets the expected rows-per-chunk for a StreamingModel,
// used to size its internal buffer. Ignored by the in-memory Model.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithLogger attaches a zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
