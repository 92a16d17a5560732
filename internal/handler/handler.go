package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/koungkub/fcm-api-tester/internal/client"
	"github.com/koungkub/fcm-api-tester/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
		NewValidator,
	),
)

const (
	ExitOK    = 0
	ExitUsage = 1
)

type Notification struct {
	services service.NotificationProvider
	validate *validator.Validate
	out      io.Writer
	logger   *zap.Logger
}

type NotificationParams struct {
	fx.In

	Services  service.NotificationProvider
	Validator *validator.Validate
	Out       io.Writer
	Logger    *zap.Logger
}

func NewNotificationHandler(params NotificationParams) *Notification {
	return &Notification{
		services: params.Services,
		validate: params.Validator,
		out:      params.Out,
		logger:   params.Logger,
	}
}

func NewValidator() *validator.Validate {
	return validator.New()
}

// NotifyHandler returns the process exit status. Only an invalid request is
// non-zero: a failed or erroring notification still exits cleanly.
func (n *Notification) NotifyHandler(ctx context.Context, req client.NotificationRequest) int {
	if err := n.validate.Struct(req); err != nil {
		fmt.Fprintf(n.out, "❌ ERROR: %v\n", NewRequestError(err))
		return ExitUsage
	}

	outcome := n.services.SendTestNotification(ctx, req)
	n.logger.Info("notification test finished", zap.Stringer("outcome", outcome))

	return ExitOK
}
