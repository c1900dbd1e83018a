package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/taskgate/internal/auth"
	"github.com/avolkov/taskgate/internal/auth/jwt"
	"github.com/avolkov/taskgate/internal/cache/redis"
	"github.com/avolkov/taskgate/internal/config"
	"github.com/avolkov/taskgate/internal/ctrl"
	hdl "github.com/avolkov/taskgate/internal/hdl/http"
	"github.com/avolkov/taskgate/internal/hdl/validation"
	"github.com/avolkov/taskgate/internal/observability/metrics/prometheus"
	"github.com/avolkov/taskgate/internal/observability/tracing/jaeger"
	"github.com/avolkov/taskgate/internal/repo/db"
	"go.uber.org/zap"
)

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	default:
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad()
	mustRegisterLogger(conf.Server.Mode)
	conf.WarnInsecureDefaults()

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf)

	cache := redis.New(conf)
	repo := db.New(conf)
	codec := jwt.New(conf)
	svc := ctrl.New(codec, auth.New(conf.Auth.BcryptCost), repo, cache)
	h := hdl.New(codec, validation.New(conf.Server.Mode), svc)

	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
