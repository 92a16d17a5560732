package client

import (
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

var Module = fx.Module("http_client",
	fx.Provide(
		fx.Annotate(
			NewHTTPClient,
			fx.As(new(HTTPClientProvider)),
		),
		NewHTTPClientConfig,
		NewEndpointConfig,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
)

type EndpointConfig struct {
	URL string `envconfig:"FCM_API_URL" default:"https://staging.hourandmore.sa/api/send-fcm-notification"`
}

func NewEndpointConfig() EndpointConfig {
	var cfg EndpointConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
