package ingest

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/record"
	"evtxview/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	nop := zerolog.Nop()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()
	mockLog.EXPECT().Debug().DoAndReturn(nop.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(nop.Info).AnyTimes()
	mockLog.EXPECT().Warn().DoAndReturn(nop.Warn).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(nop.Error).AnyTimes()

	return mockLog
}

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) Recompute() {
	n.calls++
}

func records(ids ...uint32) []record.Record {
	out := make([]record.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, record.Record{EventID: id})
	}

	return out
}

func Test_Bridge_TickAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := NewMockSource(ctrl)
	b := NewMockSource(ctrl)

	store := record.NewStore()
	notifier := &countingNotifier{}
	bridge := NewBridge(store, notifier, 3, newTestLogger(ctrl))
	bridge.Add(a, b)

	gomock.InOrder(
		a.EXPECT().Poll(3).Return(records(1, 2)),
		a.EXPECT().Done().Return(false),
		b.EXPECT().Poll(1).Return(records(3)),
		b.EXPECT().Done().Return(false),
	)

	assert.Equal(t, 3, bridge.Tick())
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 1, notifier.calls)

	gomock.InOrder(
		b.EXPECT().Poll(3).Return(nil),
		b.EXPECT().Done().Return(true),
		b.EXPECT().Err().Return(nil),
		b.EXPECT().Origin().Return("b.jsonl"),
		a.EXPECT().Poll(3).Return(nil),
		a.EXPECT().Done().Return(false),
	)

	assert.Equal(t, 0, bridge.Tick())
	assert.Equal(t, 1, notifier.calls)
	assert.False(t, bridge.Done())
}

func Test_Bridge_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := &countingNotifier{}
	bridge := NewBridge(record.NewStore(), notifier, 10, newTestLogger(ctrl))

	assert.Equal(t, 0, bridge.Tick())
	assert.Equal(t, 0, notifier.calls)
	assert.True(t, bridge.Done())
	assert.Empty(t, bridge.Status())
}

func Test_Bridge_FailedSourceKeepsRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := NewMockSource(ctrl)
	healthy := NewMockSource(ctrl)

	store := record.NewStore()
	bridge := NewBridge(store, &countingNotifier{}, 100, newTestLogger(ctrl))
	bridge.Add(broken, healthy)

	failure := errors.ErrMalformedRecord

	broken.EXPECT().Poll(100).Return(records(1, 1)).Times(1)
	broken.EXPECT().Done().Return(true).Times(1)
	broken.EXPECT().Err().Return(failure).AnyTimes()
	broken.EXPECT().Origin().Return("broken.jsonl").AnyTimes()

	healthy.EXPECT().Poll(98).Return(records(5))
	healthy.EXPECT().Poll(100).Return(records(6))
	healthy.EXPECT().Done().Return(false).Times(2)
	healthy.EXPECT().Origin().Return("healthy.jsonl").AnyTimes()

	bridge.Tick()
	bridge.Tick()

	assert.Equal(t, 4, store.Len())

	status := bridge.Status()
	assert.Equal(t, []Status{
		{Origin: "broken.jsonl", State: StateFailed, Records: 2, Err: failure},
		{Origin: "healthy.jsonl", State: StateActive, Records: 2},
	}, status)
}

func Test_Bridge_BatchBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := NewMockSource(ctrl)
	b := NewMockSource(ctrl)

	bridge := NewBridge(record.NewStore(), &countingNotifier{}, 2, newTestLogger(ctrl))
	bridge.Add(a, b)

	a.EXPECT().Poll(2).Return(records(1, 2))
	a.EXPECT().Done().Return(false)

	assert.Equal(t, 2, bridge.Tick())
}
