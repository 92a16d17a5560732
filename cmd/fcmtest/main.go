package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/fcm-api-tester/internal/client"
	"github.com/koungkub/fcm-api-tester/internal/handler"
	"github.com/koungkub/fcm-api-tester/internal/metrics"
	"github.com/koungkub/fcm-api-tester/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/joho/godotenv/autoload"
)

type LoggerConfig struct {
	Level zapcore.Level `envconfig:"LOG_LEVEL" default:"warn"`
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	req, err := handler.ParseArgs(args[1:])
	if err != nil {
		handler.Usage(os.Stdout, filepath.Base(args[0]))
		return handler.ExitUsage
	}

	logger := newLogger()
	defer logger.Sync()

	var notification *handler.Notification
	app := fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Provide(func() io.Writer { return os.Stdout }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.RecoverFromPanics(),
		metrics.Module,
		handler.Module,
		service.Module,
		client.Module,
		fx.Populate(&notification),
	)
	if err := app.Err(); err != nil {
		logger.Error("failed to build application", zap.Error(handler.NewInternalError(err)))
		return handler.ExitUsage
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Error("failed to start application", zap.Error(handler.NewInternalError(err)))
		return handler.ExitUsage
	}

	code := notification.NotifyHandler(context.Background(), req)

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("failed to stop application", zap.Error(err))
	}

	return code
}

func newLogger() *zap.Logger {
	var cfg LoggerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		cfg.Level = zapcore.WarnLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.Level)

	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
