package app

import (
	"go.uber.org/fx"

	"evtxview/internal/app/cli"
	"evtxview/internal/app/clipboard"
	"evtxview/internal/app/detail"
	"evtxview/internal/app/ingest"
	"evtxview/internal/app/monitor"
	"evtxview/internal/app/ui/wire"
	"evtxview/internal/app/worker"
)

var Module = fx.Options(
	cli.Module,
	ingest.Module,
	worker.Module,
	detail.Module,
	clipboard.Module,
	monitor.Module,
	wire.Module,
	fx.Provide(NewTelemetry),
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
