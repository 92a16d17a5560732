package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/koungkub/fcm-api-tester/internal/client"
	mockclient "github.com/koungkub/fcm-api-tester/internal/client/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testEndpoint = "https://staging.hourandmore.sa/api/send-fcm-notification"

func newTestService(httpClient client.HTTPClientProvider, out *bytes.Buffer) *NotificationService {
	return NewNotificationService(NotificationServiceParams{
		HTTPclient: httpClient,
		Endpoint:   client.EndpointConfig{URL: testEndpoint},
		Out:        out,
		Logger:     zap.NewNop(),
	})
}

func TestNewNotificationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mockclient.NewMockHTTPClientProvider(ctrl)

	service := newTestService(mockHTTPClient, &bytes.Buffer{})

	assert.NotNil(t, service)
	assert.Equal(t, mockHTTPClient, service.httpclient)
	assert.Equal(t, testEndpoint, service.endpoint)
}

func TestNotificationService_SendTestNotification(t *testing.T) {
	tests := []struct {
		name            string
		request         client.NotificationRequest
		setupMocks      func(*mockclient.MockHTTPClientProvider)
		expectedOutcome Outcome
		expectedOutput  []string
		unexpected      []string
	}{
		{
			name:    "200 with JSON body",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, client.NotificationRequest{
					Title:   "Test Notification",
					Message: "This is a test notification from Python script!",
					Token:   "abc",
				}).Return(client.NotificationResponse{
					StatusCode: http.StatusOK,
					Header:     http.Header{"Content-Type": {"application/json"}},
					Body:       []byte(`{"success":true,"message_id":"m-1"}`),
				}, nil)
			},
			expectedOutcome: OutcomeSuccess,
			expectedOutput: []string{
				"📊 Response Status: 200",
				"📊 Response Headers: map[Content-Type:application/json]",
				`📊 Response Body: {"success":true,"message_id":"m-1"}`,
				"✅ SUCCESS: Notification sent successfully!",
				"   Response Data: {\n  \"success\": true,\n  \"message_id\": \"m-1\"\n}",
			},
			unexpected: []string{"(Response is not JSON)", "❌"},
		},
		{
			name:    "200 with non-JSON body",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(client.NotificationResponse{
					StatusCode: http.StatusOK,
					Body:       []byte("OK"),
				}, nil)
			},
			expectedOutcome: OutcomeSuccess,
			expectedOutput: []string{
				"✅ SUCCESS: Notification sent successfully!",
				"   (Response is not JSON)",
			},
			unexpected: []string{"Response Data:", "❌"},
		},
		{
			name:    "200 with empty body",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(client.NotificationResponse{
					StatusCode: http.StatusOK,
				}, nil)
			},
			expectedOutcome: OutcomeSuccess,
			expectedOutput:  []string{"   (Response is not JSON)"},
		},
		{
			name:    "404 is reported as failure",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(client.NotificationResponse{
					StatusCode: http.StatusNotFound,
					Body:       []byte(`{"error":"not found"}`),
				}, nil)
			},
			expectedOutcome: OutcomeFailed,
			expectedOutput: []string{
				"📊 Response Status: 404",
				"❌ FAILED: HTTP 404",
			},
			unexpected: []string{"✅ SUCCESS", "Response Data:", "(Response is not JSON)"},
		},
		{
			name:    "transport error",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(
					client.NotificationResponse{},
					&client.TransportError{Op: "post staging.hourandmore.sa", Err: context.DeadlineExceeded},
				).Times(1)
			},
			expectedOutcome: OutcomeTransportError,
			expectedOutput:  []string{"❌ ERROR: post staging.hourandmore.sa: context deadline exceeded"},
			unexpected:      []string{"📊", "UNEXPECTED"},
		},
		{
			name:    "unexpected error",
			request: client.NewNotificationRequest("abc"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(
					client.NotificationResponse{},
					errors.New("json: unsupported value"),
				)
			},
			expectedOutcome: OutcomeUnexpectedError,
			expectedOutput:  []string{"❌ UNEXPECTED ERROR: json: unsupported value"},
			unexpected:      []string{"📊"},
		},
		{
			name:    "custom title and message are printed",
			request: client.NewNotificationRequest("abc", "Custom Title", "Custom Message"),
			setupMocks: func(httpClient *mockclient.MockHTTPClientProvider) {
				httpClient.EXPECT().Post(gomock.Any(), testEndpoint, gomock.Any()).Return(client.NotificationResponse{
					StatusCode: http.StatusOK,
				}, nil)
			},
			expectedOutcome: OutcomeSuccess,
			expectedOutput: []string{
				"   Title: Custom Title",
				"   Message: Custom Message",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTPClient := mockclient.NewMockHTTPClientProvider(ctrl)
			tt.setupMocks(mockHTTPClient)

			var out bytes.Buffer
			service := newTestService(mockHTTPClient, &out)

			outcome := service.SendTestNotification(context.Background(), tt.request)

			assert.Equal(t, tt.expectedOutcome, outcome)
			assert.Contains(t, out.String(), "🚀 Testing FCM API...")
			assert.Contains(t, out.String(), "   URL: "+testEndpoint)
			for _, line := range tt.expectedOutput {
				assert.Contains(t, out.String(), line)
			}
			for _, line := range tt.unexpected {
				assert.NotContains(t, out.String(), line)
			}
		})
	}
}

func TestNotificationService_TokenPreview(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"short token is printed whole", "abc", "   Token: abc..."},
		{"long token is cut at 20 characters", "dGhpcyBpcyBhIHZlcnkgbG9uZyB0b2tlbg", "   Token: dGhpcyBpcyBhIHZlcnkg..."},
		{"multibyte token is cut by character", "ééééééééééééééééééééééé", "   Token: éééééééééééééééééééé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTPClient := mockclient.NewMockHTTPClientProvider(ctrl)
			mockHTTPClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(client.NotificationResponse{StatusCode: http.StatusOK}, nil)

			var out bytes.Buffer
			newTestService(mockHTTPClient, &out).SendTestNotification(context.Background(), client.NewNotificationRequest(tt.token))

			assert.Contains(t, out.String(), tt.expected+"\n")
		})
	}
}

func TestFlattenHeader(t *testing.T) {
	header := http.Header{
		"Content-Type": {"application/json"},
		"Vary":         {"Origin", "Accept-Encoding"},
	}

	assert.Equal(t, map[string]string{
		"Content-Type": "application/json",
		"Vary":         "Origin, Accept-Encoding",
	}, flattenHeader(header))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "transport_error", OutcomeTransportError.String())
	assert.Equal(t, "unexpected_error", OutcomeUnexpectedError.String())
}
