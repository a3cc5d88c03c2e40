package clipboard

import "go.uber.org/fx"

// Module provides the clipboard
var Module = fx.Options(
	fx.Provide(NewClipboard),
)
