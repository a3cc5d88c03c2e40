package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/record"
	"evtxview/internal/app/worker"
	"evtxview/internal/config"
)

func Test_Opener_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jsonl"), []byte(sample), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o600))
	writeGzip(t, filepath.Join(dir, "b.jsonl.gz"), sample)

	cfg := config.DefaultConfig()
	log := newTestLogger(ctrl)
	o := NewOpener(cfg, worker.NewWorkerPool(cfg), log)

	sources, err := o.Open(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, filepath.Join(dir, "a.jsonl"), sources[0].Origin())
	assert.Equal(t, filepath.Join(dir, "b.jsonl.gz"), sources[1].Origin())

	store := record.NewStore()
	bridge := NewBridge(store, &countingNotifier{}, 10, log)
	bridge.Add(sources...)

	require.Eventually(t, func() bool {
		bridge.Tick()
		return bridge.Done()
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, 4, store.Len())
}

func Test_Opener_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	o := NewOpener(cfg, worker.NewWorkerPool(cfg), newTestLogger(ctrl))

	_, err := o.Open(context.Background(), nil)
	assert.ErrorIs(t, err, errors.ErrNoInputFiles)

	_, err = o.Open(context.Background(), []string{t.TempDir()})
	assert.ErrorIs(t, err, errors.ErrNoInputFiles)

	_, err = o.Open(context.Background(), []string{filepath.Join(t.TempDir(), "missing.jsonl")})
	assert.ErrorIs(t, err, errors.ErrFailedToOpenSource)
}
