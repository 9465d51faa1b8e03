package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-api/configs"
	_ "weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/application/processor"
	"weather-api/internal/application/schedule"
	"weather-api/internal/application/view"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/internal/infra/aws"
	"weather-api/internal/infra/database"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
	"weather-api/pkg/sqs"
)

// @title Weather API
// @version 1.0
// @description Current weather, stored history and NASA POWER rainfall.
// @BasePath /api
func main() {
	if _, err := configs.Load(); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	store, err := database.Open(ctx, database.SettingsFromProperties())
	if err != nil {
		log.Fatal("Failed to open sample store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	redisClient := newRedisClient()
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	captureQueue := resource.GetString("app.capture.queue")
	sqsClient := newSQSClient(ctx, captureQueue)

	// Init gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.openweather.base-url"),
		http.ClientOptions{ReadTimeout: resource.GetDurationOrDefault("app.openweather.timeout", 10*time.Second)},
	)
	rainfallGateway := api.NewRainfallGateway(
		resource.GetString("app.nasa.base-url"),
		http.ClientOptions{ReadTimeout: resource.GetDurationOrDefault("app.nasa.timeout", 15*time.Second)},
	)
	queueHealthGateway := queue.NewQueueHealthGateway()

	var queueSender queue.Sender
	if sqsClient != nil {
		queueSender = aws.NewSQSSenderAdapter(sqsClient)
	}

	// Init UseCase
	apiKey := resource.GetString("app.openweather.api-key")
	if apiKey == "" {
		log.Warn(msg.GetMessage("weather.error.missing-key"))
	}
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		APIKey:         apiKey,
		WindowDays:     resource.GetIntOrDefault("app.nasa.window-days", 7),
		CaptureCities:  resource.GetStringSlice("app.capture.cities"),
		CaptureQueue:   captureQueue,
		CaptureTimeout: resource.GetDurationOrDefault("app.capture.timeout", 30*time.Second),
	}, weatherGateway, rainfallGateway, store.Samples, queueSender)

	var cacheChecker health.CacheHealthChecker
	if redisClient != nil {
		cacheChecker = cache.NewRedisHealthGateway(redisClient)
	}
	healthUseCase := health.NewHealthUseCase(store.Health, queueHealthGateway, cacheChecker)

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	middleware.SetupCORS(e, resource.GetStringSlice("app.server.cors.allow-origins"))
	middleware.SetupRequestLogger(e)
	middleware.SetupValidator(e)
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	e.Renderer = renderer

	apiGroup := e.Group(resource.GetString("app.server.context-path") + "/api")
	controller.NewWeatherController(apiGroup, weatherUseCase).InitWeatherRoutes()
	controller.NewRainfallController(apiGroup, weatherUseCase).InitRainfallRoutes()
	controller.NewHealthController(e, healthUseCase).InitHealthRoutes()
	controller.NewPageController(e, weatherUseCase,
		resource.GetStringOrDefault("app.page.default-city", "Thane"),
		resource.GetDurationOrDefault("app.page.timeout", 5*time.Second),
	).InitPageRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Worker
	if sqsClient != nil {
		startCaptureWorker(ctx, sqsClient, captureQueue, weatherUseCase, queueHealthGateway)
	}

	// Init Schedule
	scheduler := startCaptureScheduler(ctx, weatherUseCase, redisClient)

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8000")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.shutdown"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop()
	}
}

func newRedisClient() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	return client
}

func newSQSClient(ctx context.Context, captureQueue string) sqs.SQSClient {
	if captureQueue == "" {
		return nil
	}

	settings := aws.SettingsFromProperties()
	awsConfig, err := aws.LoadConfig(ctx, settings)
	if err != nil {
		log.Fatal("Failed to load AWS configuration", zap.Error(err))
	}
	return aws.NewSqsClient(awsConfig, settings.Endpoint)
}

func startCaptureWorker(ctx context.Context, client sqs.SQSClient, queueName string, weatherUseCase weather.UseCase, healthGateway *queue.QueueHealthGateway) {
	worker, err := sqs.NewWorker(ctx, client, queueName, processor.NewCaptureProcessor(weatherUseCase), &sqs.WorkerConfig{PoolSize: 2})
	if err != nil {
		log.Error("Capture worker not started", zap.String("queue", queueName), zap.Error(err))
		return
	}

	healthGateway.RegisterWorker(queueName, worker)
	go func() {
		defer healthGateway.UnregisterWorker(queueName)
		worker.Start(ctx)
	}()
}

func startCaptureScheduler(ctx context.Context, weatherUseCase weather.UseCase, redisClient *redis.Client) *schedule.CaptureScheduler {
	cronExpression := resource.GetString("app.capture.cron")
	if !captureScheduleEnabled(resource.GetBool("app.capture.enabled"), cronExpression, resource.GetStringSlice("app.capture.cities")) {
		log.Info(msg.GetMessage("capture.schedule.disabled"))
		return nil
	}

	scheduler := schedule.NewCaptureScheduler(weatherUseCase, redisClient, schedule.CaptureSchedulerConfig{
		CronExpression:  cronExpression,
		LockTTL:         resource.GetDurationOrDefault("app.redis.lock-ttl", time.Minute),
		RefreshInterval: resource.GetDurationOrDefault("app.redis.lock-refresh", 20*time.Second),
	})
	if err := scheduler.Start(ctx); err != nil {
		log.Error("Capture scheduler not started", zap.String("cron", cronExpression), zap.Error(err))
		return nil
	}
	return scheduler
}

// captureScheduleEnabled requires the explicit switch since the cron and
// cities carry defaults.
func captureScheduleEnabled(enabled bool, cronExpression string, cities []string) bool {
	return enabled && strings.TrimSpace(cronExpression) != "" && len(cities) > 0
}
