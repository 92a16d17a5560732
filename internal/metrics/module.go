package metrics

import "go.uber.org/fx"

var Module = fx.Module("metric",
	fx.Provide(
		NewRegistry,
		NewMeterProvider,
		NewMetric,
		NewMetricConfig,
		NewPusher,
		NewPusherConfig,
	),
	httpCollectorModule,
	// the pusher registers its OnStop hook on construction
	fx.Invoke(func(*Pusher) {}),
)

var (
	httpCollectorModule = fx.Provide(
		NewHTTPClientCollector,
	)
)
