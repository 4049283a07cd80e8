package main

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/tabkit/tabular/pkg/tabularerrors"
)

// openInput opens path for reading, transparently decompressing .gz and
// .zst files.
func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tabularerrors.Wrap(err, tabularerrors.KindFile, "cannot open input file").
			WithDetail("path", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, tabularerrors.Wrap(err, tabularerrors.KindFile, "cannot read gzip input").
				WithDetail("path", path)
		}
		return &layeredReadCloser{Reader: gz, closers: []io.Closer{gz, file}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, tabularerrors.Wrap(err, tabularerrors.KindFile, "cannot read zstd input").
				WithDetail("path", path)
		}
		return &layeredReadCloser{Reader: zr.IOReadCloser(), closers: []io.Closer{zr.IOReadCloser(), file}}, nil
	default:
		return file, nil
	}
}

// layeredReadCloser closes a decompressor and its underlying file.
type layeredReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (l *layeredReadCloser) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// newDelimitedReader builds a csv.Reader tolerant of ragged rows; width
// normalization is the model's concern, not the parser's.
func newDelimitedReader(r io.Reader, delimiter rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// readAllRows materializes every row of a delimited file.
func readAllRows(path string, delimiter rune) ([][]string, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	cr := newDelimitedReader(in, delimiter)
	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, tabularerrors.Wrap(err, tabularerrors.KindFile, "cannot parse input file").
				WithDetail("path", path)
		}
		rows = append(rows, record)
	}
}

// fileChunkSource adapts a delimited file to tabular.ChunkSource,
// yielding up to chunkSize rows per chunk.
type fileChunkSource struct {
	reader    *csv.Reader
	closer    io.Closer
	chunkSize int
	done      bool
}

func newFileChunkSource(path string, delimiter rune, chunkSize int) (*fileChunkSource, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	return &fileChunkSource{
		reader:    newDelimitedReader(in, delimiter),
		closer:    in,
		chunkSize: chunkSize,
	}, nil
}

// Next reads up to chunkSize rows, returning io.EOF once the file is
// drained and closed.
func (s *fileChunkSource) Next() ([][]string, error) {
	if s.done {
		return nil, io.EOF
	}

	chunk := make([][]string, 0, s.chunkSize)
	for len(chunk) < s.chunkSize {
		record, err := s.reader.Read()
		if err == io.EOF {
			s.done = true
			s.closer.Close()
			if len(chunk) == 0 {
				return nil, io.EOF
			}
			return chunk, nil
		}
		if err != nil {
			s.done = true
			s.closer.Close()
			return nil, err
		}
		chunk = append(chunk, record)
	}
	return chunk, nil
}
