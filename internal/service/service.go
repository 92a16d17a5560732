package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/koungkub/fcm-api-tester/internal/client"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNotificationService,
			fx.As(new(NotificationProvider)),
		),
	),
)

const tokenPreviewLen = 20

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . NotificationProvider
type NotificationProvider interface {
	SendTestNotification(ctx context.Context, req client.NotificationRequest) Outcome
}

var _ NotificationProvider = (*NotificationService)(nil)

type NotificationService struct {
	httpclient client.HTTPClientProvider
	endpoint   string
	out        io.Writer
	logger     *zap.Logger
}

type NotificationServiceParams struct {
	fx.In

	HTTPclient client.HTTPClientProvider
	Endpoint   client.EndpointConfig
	Out        io.Writer
	Logger     *zap.Logger
}

func NewNotificationService(params NotificationServiceParams) *NotificationService {
	return &NotificationService{
		httpclient: params.HTTPclient,
		endpoint:   params.Endpoint.URL,
		out:        params.Out,
		logger:     params.Logger,
	}
}

// SendTestNotification posts req once and writes a human readable report.
// Every failure ends up in the report; nothing is returned as an error.
func (s *NotificationService) SendTestNotification(ctx context.Context, req client.NotificationRequest) Outcome {
	fmt.Fprintln(s.out, "🚀 Testing FCM API...")
	fmt.Fprintf(s.out, "   URL: %s\n", s.endpoint)
	fmt.Fprintf(s.out, "   Title: %s\n", req.Title)
	fmt.Fprintf(s.out, "   Message: %s\n", req.Message)
	fmt.Fprintf(s.out, "   Token: %s...\n", tokenPreview(req.Token))
	fmt.Fprintln(s.out)

	resp, err := s.httpclient.Post(ctx, s.endpoint, req)
	if err != nil {
		var transportErr *client.TransportError
		if errors.As(err, &transportErr) {
			s.logger.Warn("notification request failed", zap.Error(err))
			fmt.Fprintf(s.out, "❌ ERROR: %v\n", err)
			return OutcomeTransportError
		}

		s.logger.Error("unexpected notification failure", zap.Error(err))
		fmt.Fprintf(s.out, "❌ UNEXPECTED ERROR: %v\n", err)
		return OutcomeUnexpectedError
	}

	return s.report(resp)
}

func (s *NotificationService) report(resp client.NotificationResponse) Outcome {
	fmt.Fprintf(s.out, "📊 Response Status: %d\n", resp.StatusCode)
	fmt.Fprintf(s.out, "📊 Response Headers: %v\n", flattenHeader(resp.Header))
	fmt.Fprintf(s.out, "📊 Response Body: %s\n", resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(s.out, "❌ FAILED: HTTP %d\n", resp.StatusCode)
		return OutcomeFailed
	}

	fmt.Fprintln(s.out, "✅ SUCCESS: Notification sent successfully!")

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Body, "", "  "); err != nil {
		s.logger.Debug("response body is not JSON", zap.Error(err))
		fmt.Fprintln(s.out, "   (Response is not JSON)")
		return OutcomeSuccess
	}
	fmt.Fprintf(s.out, "   Response Data: %s\n", pretty.String())

	return OutcomeSuccess
}

func tokenPreview(token string) string {
	runes := []rune(token)
	if len(runes) > tokenPreviewLen {
		runes = runes[:tokenPreviewLen]
	}
	return string(runes)
}

func flattenHeader(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key, values := range header {
		flat[key] = strings.Join(values, ", ")
	}
	return flat
}
