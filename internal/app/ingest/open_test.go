package ingest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtxview/internal/app/errors"
)

const sample = `{"System":{"EventID":1}}` + "\n" + `{"System":{"EventID":2}}` + "\n"

func writeGzip(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func writeZstd(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func Test_CompressionOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Compression
	}{
		{path: "a.jsonl", expected: CompressionNone},
		{path: "a.jsonl.gz", expected: CompressionGzip},
		{path: "A.JSON.GZ", expected: CompressionGzip},
		{path: "a.jsonl.zst", expected: CompressionZstd},
		{path: "a.zstd", expected: CompressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompressionOf(tt.path))
		})
	}
}

func Test_Open(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.jsonl")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0o600))

	gz := filepath.Join(dir, "events.jsonl.gz")
	writeGzip(t, gz, sample)

	zst := filepath.Join(dir, "events.jsonl.zst")
	writeZstd(t, zst, sample)

	tests := []struct {
		name        string
		path        string
		compression Compression
	}{
		{name: "plain", path: plain, compression: CompressionNone},
		{name: "gzip", path: gz, compression: CompressionGzip},
		{name: "zstd", path: zst, compression: CompressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, compression, err := Open(tt.path)
			require.NoError(t, err)
			defer rc.Close()

			assert.Equal(t, tt.compression, compression)

			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, sample, string(data))
		})
	}
}

func Test_Open_Errors(t *testing.T) {
	dir := t.TempDir()

	bogus := filepath.Join(dir, "bogus.jsonl.gz")
	require.NoError(t, os.WriteFile(bogus, []byte("not gzip"), 0o600))

	_, _, err := Open(filepath.Join(dir, "missing.jsonl"))
	assert.ErrorIs(t, err, errors.ErrFailedToOpenSource)

	_, _, err = Open(dir)
	assert.ErrorIs(t, err, errors.ErrUnsupportedInput)

	_, _, err = Open(bogus)
	assert.ErrorIs(t, err, errors.ErrUnsupportedInput)
}
