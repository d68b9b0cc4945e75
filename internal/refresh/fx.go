package refresh

import "go.uber.org/fx"

var Module = fx.Module("refresh",
	fx.Provide(NewSignal),
)
