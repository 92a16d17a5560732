package client

import "net/http"

const (
	DefaultTitle   = "Test Notification"
	DefaultMessage = "This is a test notification from Python script!"
)

// NotificationRequest field order is the wire order of the JSON body.
type NotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Token   string `json:"token" validate:"required"`
}

func NewNotificationRequest(token string, opts ...string) NotificationRequest {
	req := NotificationRequest{
		Title:   DefaultTitle,
		Message: DefaultMessage,
		Token:   token,
	}
	if len(opts) > 0 {
		req.Title = opts[0]
	}
	if len(opts) > 1 {
		req.Message = opts[1]
	}

	return req
}

type NotificationResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
