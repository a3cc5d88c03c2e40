package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"evtxview/internal/app/errors"
)

// Compression identifies how a source file is encoded on disk
type Compression string

// Supported encodings
const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// CompressionOf picks the encoding from the file extension
func CompressionOf(path string) Compression {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error

	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open opens path for reading and decompresses it according to its extension
func Open(path string) (io.ReadCloser, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompressionNone, fmt.Errorf("%w: %w", errors.ErrFailedToOpenSource, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, CompressionNone, fmt.Errorf("%w: %w", errors.ErrFailedToOpenSource, err)
	}

	if info.IsDir() {
		f.Close()
		return nil, CompressionNone, fmt.Errorf("%w: %s is a directory", errors.ErrUnsupportedInput, path)
	}

	compression := CompressionOf(path)
	buffered := bufio.NewReaderSize(f, 64*1024)

	switch compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			f.Close()
			return nil, compression, fmt.Errorf("%w: %s: %w", errors.ErrUnsupportedInput, path, err)
		}

		return &readCloser{Reader: gz, closers: []func() error{gz.Close, f.Close}}, compression, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			f.Close()
			return nil, compression, fmt.Errorf("%w: %s: %w", errors.ErrUnsupportedInput, path, err)
		}

		closeDecoder := func() error {
			dec.Close()
			return nil
		}

		return &readCloser{Reader: dec, closers: []func() error{closeDecoder, f.Close}}, compression, nil
	default:
		return &readCloser{Reader: f, closers: []func() error{f.Close}}, compression, nil
	}
}
