package worker

import "go.uber.org/fx"

// Module provides the decoding worker pool
var Module = fx.Options(
	fx.Provide(NewWorkerPool),
)
