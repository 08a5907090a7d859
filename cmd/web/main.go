package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"go-web/configs"
	_ "go-web/docs"
	"go-web/internal/application/controller"
	"go-web/internal/application/middleware"
	"go-web/internal/application/schedule"
	"go-web/internal/domain/gateway/cache"
	"go-web/internal/domain/gateway/db"
	"go-web/internal/domain/usecase/health"
	"go-web/internal/infra/database"
	gormdb "go-web/internal/infra/database/gorm"
	"go-web/internal/infra/database/sqlc"
	"go-web/pkg/log"
	"go-web/pkg/metrics"
	"go-web/pkg/msg"
	"go-web/pkg/redis"
	"go-web/pkg/resource"
)

func main() {
	if err := resource.Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatal("failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesFilePath); err != nil {
		log.Fatal("failed to load messages", zap.Error(err))
	}
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	appName := resource.GetStringOrDefault("app.name", configs.Env.ApplicationName)
	log.Info(msg.GetMessage("app.start", appName))

	// Init infra
	dbConfig := database.ConfigFromProperties()
	dbGateway, dbCloser := openDatabase(dbConfig)
	defer closeQuietly("database", dbCloser)
	checkDatabase(dbGateway)

	var cacheGateway cache.HealthCacheGateway = cache.DisabledHealthCacheGateway{}
	var heartbeatGateway cache.HeartbeatGateway
	if resource.GetBool("app.redis.enabled") {
		redisClient := openRedis()
		defer closeQuietly("redis", redisClient)

		cacheGateway = cache.NewRedisHealthCacheGateway(redisClient)
		heartbeatGateway = cache.NewRedisHeartbeatGateway(redisClient, appName,
			resource.GetDurationOrDefault("app.health.heartbeat.ttl", 10*time.Minute))
	}

	// Init UseCase
	appMetrics := metrics.NewMetrics()
	healthOptions := []health.Option{
		health.WithMetrics(appMetrics),
		health.WithTimeout(resource.GetDurationOrDefault("app.health.timeout", 2*time.Second)),
	}
	if heartbeatGateway != nil {
		healthOptions = append(healthOptions, health.WithHeartbeatGateway(heartbeatGateway))
	}
	healthUseCase := health.NewHealthUseCase(dbGateway, cacheGateway, healthOptions...)

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	if resource.GetBool("app.metrics.enabled") {
		middleware.SetupMetrics(e, appMetrics, resource.GetStringOrDefault("app.metrics.path", "/metrics"))
	}
	if resource.GetBool("app.swagger.enabled") {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Controller
	dbHealthController := controller.NewDBHealthController(api, healthUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	dbHealthController.InitDBHealthRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	if resource.GetBool("app.health.heartbeat.enabled") {
		heartbeatScheduler := schedule.NewHeartbeatScheduler(healthUseCase, heartbeatGateway, schedule.HeartbeatSchedulerConfig{
			CronExpression: resource.GetString("app.health.heartbeat.cron"),
			Timeout:        resource.GetDurationOrDefault("app.health.timeout", 2*time.Second),
			StoreTimeout:   resource.GetDurationOrDefault("app.health.heartbeat.store-timeout", 2*time.Second),
		})
		if err := heartbeatScheduler.InitHeartbeatScheduleTasks(); err != nil {
			log.Fatal("failed to start heartbeat scheduler", zap.Error(err))
		}
		defer heartbeatScheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	waitForShutdown(e, appName, resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
}

// openDatabase opens the pool for the configured client and returns the gateway probing it
func openDatabase(config database.Config) (db.HealthDBGateway, io.Closer) {
	switch config.Client {
	case database.ClientSQL:
		sqlDB, err := sqlc.Open(config)
		if err != nil {
			log.Fatal(msg.GetMessage("db.open-fail", config.Client, err))
		}
		return db.NewSQLCHealthDBGateway(sqlDB), sqlDB
	case database.ClientGorm:
		gormDB, err := gormdb.Open(config)
		if err != nil {
			log.Fatal(msg.GetMessage("db.open-fail", config.Client, err))
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatal(msg.GetMessage("db.open-fail", config.Client, err))
		}
		return db.NewGormHealthDBGateway(gormDB), sqlDB
	default:
		log.Fatal(msg.GetMessage("db.unknown-client", config.Client))
		return nil, nil
	}
}

// checkDatabase warns when the database cannot be reached. The service still starts so /db/health can report it.
func checkDatabase(gateway db.HealthDBGateway) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := gateway.Probe(ctx); err != nil {
		log.Warn(msg.GetMessage("db.unreachable", err), zap.String("client", gateway.Client()))
	}
}

func openRedis() *redis.Client {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDialTimeout(resource.GetDurationOrDefault("app.redis.dial-timeout", 2*time.Second))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal(msg.GetMessage("cache.open-fail", err))
	}
	return client
}

func waitForShutdown(e *echo.Echo, appName string, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("app.stopping", appName))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}

func closeQuietly(name string, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		log.Warn("failed to close "+name, zap.Error(err))
	}
}
