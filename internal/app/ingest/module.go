package ingest

import "go.uber.org/fx"

// Module provides the source opener
var Module = fx.Options(
	fx.Provide(NewOpener),
)
