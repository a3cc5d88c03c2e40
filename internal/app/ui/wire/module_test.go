package wire

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"evtxview/internal/app/detail"
	"evtxview/internal/app/ingest"
	"evtxview/internal/app/monitor"
	"evtxview/internal/app/table"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

func newParams(ctrl *gomock.Controller) (UIParams, *logger.MockLogger) {
	mockLogger := logger.NewMockLogger(ctrl)

	return UIParams{
		Config:   config.DefaultConfig(),
		Renderer: detail.NewRenderer(),
		Monitor:  monitor.NewMockMonitor(ctrl),
		Logger:   mockLogger,
	}, mockLogger
}

func Test_NewUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params, _ := newParams(ctrl)

	factory := NewUI(params)
	assert.NotNil(t, factory)
}

func Test_UI_CreateProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params, mockLogger := newParams(ctrl)
	nop := zerolog.Nop()
	mockLogger.EXPECT().WithComponent(gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Debug().DoAndReturn(nop.Debug).AnyTimes()
	mockLogger.EXPECT().Info().DoAndReturn(nop.Info).AnyTimes()

	tbl := table.New(params.Config, []ingest.Source{}, mockLogger)

	factory := NewUI(params)
	program, err := factory(context.Background(), tbl)

	assert.NoError(t, err)
	assert.NotNil(t, program)
}
