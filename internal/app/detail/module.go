package detail

import "go.uber.org/fx"

// Module provides the detail renderer
var Module = fx.Options(
	fx.Provide(NewRenderer),
)
