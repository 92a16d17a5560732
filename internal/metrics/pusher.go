package metrics

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Pusher ships the registry to a Pushgateway once, when the app stops.
// A CLI run is too short lived to be scraped.
type Pusher struct {
	pusher *push.Pusher
	logger *zap.Logger
}

type PusherParams struct {
	fx.In

	Config   PusherConfig
	Registry *promclient.Registry
	Logger   *zap.Logger

	// Meter is required so the push hook stops before the meter provider shuts down.
	Meter metric.Meter
}

type PusherConfig struct {
	URL string `envconfig:"METRICS_PUSHGATEWAY_URL"`
	Job string `envconfig:"METRICS_PUSHGATEWAY_JOB" default:"fcmtest"`
}

func NewPusherConfig() PusherConfig {
	var cfg PusherConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// NewPusher returns nil when no Pushgateway is configured.
func NewPusher(lc fx.Lifecycle, params PusherParams) *Pusher {
	if params.Config.URL == "" {
		return nil
	}

	p := &Pusher{
		pusher: push.New(params.Config.URL, params.Config.Job).Gatherer(params.Registry),
		logger: params.Logger,
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Push(ctx)
			return nil
		},
	})

	return p
}

// Push never fails the run; a missing gateway is only logged.
func (p *Pusher) Push(ctx context.Context) {
	if err := p.pusher.PushContext(ctx); err != nil {
		p.logger.Warn("failed to push metrics", zap.Error(err))
		return
	}
	p.logger.Debug("metrics pushed")
}
