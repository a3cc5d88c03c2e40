package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/record"
	"evtxview/internal/app/worker"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

func startSource(t *testing.T, ctx context.Context, path string, opts Options) *FileSource {
	t.Helper()

	cfg := config.DefaultConfig()
	s := NewFileSource(path, opts, NewDecoder(), logger.NewSilentLogger(cfg))
	s.Start(ctx, worker.NewWorkerPool(cfg))

	return s
}

func drain(t *testing.T, s Source) []record.Record {
	t.Helper()

	var out []record.Record

	require.Eventually(t, func() bool {
		out = append(out, s.Poll(100)...)
		return s.Done()
	}, 2*time.Second, 5*time.Millisecond)

	return out
}

func eventIDs(records []record.Record) []uint32 {
	ids := make([]uint32, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.EventID)
	}

	return ids
}

func Test_FileSource_ReadsAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Security.jsonl")
	content := `{"System":{"EventID":1}}` + "\n\n" +
		`{"System":{"EventID":2,"Security":{"UserID":"S-1-5-18"}}}` + "\r\n" +
		`{"System":{"EventID":3}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := startSource(t, context.Background(), path, Options{Buffer: 2})
	records := drain(t, s)

	assert.Equal(t, []uint32{1, 2, 3}, eventIDs(records))
	assert.Equal(t, "S-1-5-18", records[1].User)
	assert.Equal(t, path, records[0].Origin)
	assert.NoError(t, s.Err())
	assert.Empty(t, s.Poll(10))
}

func Test_FileSource_Compressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Security.jsonl.zst")
	writeZstd(t, path, sample)

	s := startSource(t, context.Background(), path, Options{Buffer: 16, Follow: true})

	assert.Equal(t, []uint32{1, 2}, eventIDs(drain(t, s)))
	assert.NoError(t, s.Err())
}

func Test_FileSource_MalformedStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jsonl")
	content := `{"System":{"EventID":1}}` + "\n" +
		`{"System":{"EventID":2}}` + "\n" +
		`{"System":` + "\n" +
		`{"System":{"EventID":3}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := startSource(t, context.Background(), path, Options{Buffer: 16})
	records := drain(t, s)

	assert.Equal(t, []uint32{1, 2}, eventIDs(records))
	require.ErrorIs(t, s.Err(), errors.ErrMalformedRecord)
	assert.Contains(t, s.Err().Error(), "broken.jsonl:3")
}

func Test_FileSource_Missing(t *testing.T) {
	s := startSource(t, context.Background(), filepath.Join(t.TempDir(), "gone.jsonl"), Options{Buffer: 1})

	assert.Empty(t, drain(t, s))
	assert.ErrorIs(t, s.Err(), errors.ErrFailedToOpenSource)
}

func Test_FileSource_PollLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.jsonl")

	var content []byte
	for i := 0; i < 10; i++ {
		content = append(content, []byte(`{"System":{"EventID":7}}`+"\n")...)
	}
	require.NoError(t, os.WriteFile(path, content, 0o600))

	s := startSource(t, context.Background(), path, Options{Buffer: 16})

	require.Eventually(t, func() bool { return len(s.records) == 10 }, 2*time.Second, 5*time.Millisecond)

	assert.Len(t, s.Poll(4), 4)
	assert.Len(t, s.Poll(0), 0)
	assert.Len(t, s.Poll(100), 6)
}

func Test_FileSource_Follow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"System":{"EventID":1}}`+"\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := startSource(t, ctx, path, Options{Buffer: 16, Follow: true})

	var got []record.Record

	require.Eventually(t, func() bool {
		got = append(got, s.Poll(10)...)
		return len(got) == 1
	}, 2*time.Second, 5*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"System":{"EventID":2}}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		got = append(got, s.Poll(10)...)
		return len(got) == 2
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, []uint32{1, 2}, eventIDs(got))
	assert.False(t, s.Done())

	cancel()

	drain(t, s)
	assert.NoError(t, s.Err())
}

func Test_FileSource_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := startSource(t, ctx, "unused.jsonl", Options{Buffer: 1})

	assert.Empty(t, drain(t, s))
	assert.ErrorIs(t, s.Err(), errors.ErrFailedToAcquireWorker)
}
