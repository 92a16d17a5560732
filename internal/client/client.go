package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/fcm-api-tester/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . HTTPClientProvider
type HTTPClientProvider interface {
	Post(ctx context.Context, u string, reqBody NotificationRequest) (NotificationResponse, error)
}

var _ HTTPClientProvider = (*HTTPClient)(nil)

type HTTPClient struct {
	httpclient             *http.Client
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type HTTPClientConfig struct {
	Timeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
}

type HTTPClientParams struct {
	fx.In

	Config                 HTTPClientConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
}

func NewHTTPClient(params HTTPClientParams) *HTTPClient {
	return &HTTPClient{
		httpclient: &http.Client{
			Timeout: params.Config.Timeout,
		},
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}
}

func NewHTTPClientConfig() HTTPClientConfig {
	var cfg HTTPClientConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Post sends reqBody once. A non-200 status is returned as a response, not an error.
func (c *HTTPClient) Post(ctx context.Context, u string, reqBody NotificationRequest) (NotificationResponse, error) {
	start := time.Now()
	host, err := extractHost(u)
	if err != nil {
		return NotificationResponse{}, transportError("parse url", err)
	}

	circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(host)

	cbState := circuitBreaker.State().String()
	c.metricsCollector.RecordCircuitBreakerState(ctx, host, cbState)

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return NotificationResponse{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		u,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return NotificationResponse{}, transportError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending notification request",
		zap.String("host", host),
		zap.Int("body_size", len(jsonBody)),
	)

	resp, err := circuitBreaker.Execute(func() (CircuitBreakerResponse, error) {
		resp, err := c.httpclient.Do(req)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}
		defer resp.Body.Close()

		rawBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}

		return CircuitBreakerResponse{
			Body:       rawBody,
			Header:     resp.Header,
			StatusCode: resp.StatusCode,
		}, nil
	})

	duration := time.Since(start)

	if err != nil {
		c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, 0, duration, err)
		c.logger.Debug("notification request failed", zap.String("host", host), zap.Error(err))
		return NotificationResponse{}, transportError("post "+host, err)
	}

	var statusErr error
	if resp.StatusCode != http.StatusOK {
		statusErr = metrics.ErrInvalidStatus
	}
	c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, statusErr)

	c.logger.Debug("notification request completed",
		zap.String("host", host),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return NotificationResponse{
		StatusCode: resp.StatusCode,
		Header:     http.Header(resp.Header),
		Body:       resp.Body,
	}, nil
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
