package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtxview/internal/app/errors"
	"evtxview/internal/config"
)

func Test_NewWorkerPool_Size(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		expected int
	}{
		{name: "default", workers: config.DefaultWorkers, expected: config.DefaultWorkers},
		{name: "single", workers: 1, expected: 1},
		{name: "zero falls back to one", workers: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Ingest.Workers = tt.workers

			assert.Equal(t, tt.expected, NewWorkerPool(cfg).Size())
		})
	}
}

func Test_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.Ingest.Workers = 2
	p := NewWorkerPool(cfg)

	require.NoError(t, p.Acquire(ctx))
	require.NoError(t, p.Acquire(ctx))
	assert.Equal(t, 2, p.Active())

	acquired := make(chan struct{})

	go func() {
		if p.Acquire(ctx) == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatal("Acquired a slot while the pool was full")
	case <-time.After(50 * time.Millisecond):
	}

	p.Release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("Slot was not acquired after release")
	}

	p.Release()
	p.Release()
	assert.Equal(t, 0, p.Active())
}

func Test_AcquireContextCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ingest.Workers = 1
	p := NewWorkerPool(cfg)

	require.NoError(t, p.Acquire(context.Background()))
	defer p.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Acquire(ctx)
	assert.ErrorIs(t, err, errors.ErrFailedToAcquireWorker)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Go_BoundsConcurrency(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ingest.Workers = 3
	p := NewWorkerPool(cfg)

	var (
		active    atomic.Int32
		maxActive atomic.Int32
		wg        sync.WaitGroup
	)

	release := make(chan struct{})

	for i := 0; i < 10; i++ {
		wg.Add(1)

		err := p.Go(context.Background(), func() {
			defer wg.Done()

			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}

			<-release
			active.Add(-1)
		})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool { return p.Active() == 3 }, time.Second, 5*time.Millisecond)

	close(release)
	wg.Wait()

	assert.LessOrEqual(t, maxActive.Load(), int32(3))
	assert.Equal(t, int32(0), active.Load())
}

func Test_Go_CancelledContext(t *testing.T) {
	p := NewWorkerPool(config.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := p.Go(ctx, func() { called = true })

	assert.ErrorIs(t, err, errors.ErrFailedToAcquireWorker)
	assert.False(t, called)
}
