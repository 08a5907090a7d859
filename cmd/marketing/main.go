package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-web/configs"
	"go-web/internal/application/middleware"
	"go-web/internal/application/site"
	"go-web/pkg/log"
	"go-web/pkg/msg"
	"go-web/pkg/resource"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := resource.Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatal("failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesFilePath); err != nil {
		log.Fatal("failed to load messages", zap.Error(err))
	}
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	appName := resource.GetStringOrDefault("app.name", configs.Env.ApplicationName) + "-marketing"
	log.Info(msg.GetMessage("app.start", appName))

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	if err := site.NewRouter(site.Routes, version).Mount(e); err != nil {
		log.Fatal("failed to mount site routes", zap.Error(err))
	}

	port := resource.GetStringOrDefault("app.marketing.port", "3000")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("app.stopping", appName))
	ctx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}
