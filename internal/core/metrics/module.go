package metrics

import "go.uber.org/fx"

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(
		NewResolutionCounter,
		func(c *ResolutionCounter) Reporter { return c },
	),
)
