package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/trigger"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close order event publisher", "error", err)
		}
	}()

	restored, err := app.CreateRestoreSnapshotCommandHandler().Handle(ctx, commands.NewRestoreSnapshotCommand())
	if err != nil {
		log.Fatalf("Error restoring snapshot: %v", err)
	}
	logger.Info("snapshot restore finished", "restored", restored)

	adapter, err := app.CreateTriggerAdapter()
	if err != nil {
		log.Fatalf("Error creating trigger adapter: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	var wg sync.WaitGroup
	if consumer := app.CreatePaymentCompletedConsumer(adapter); consumer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil {
				logger.Error("payment-completed consumer stopped", "error", err)
			}
			if err := consumer.Close(); err != nil {
				logger.Error("failed to close payment-completed consumer", "error", err)
			}
		}()
	}

	e := startWebServer(app, adapter, configs.HTTPPort)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop web server", "error", err)
	}
	wg.Wait()
	if err := adapter.Close(); err != nil {
		logger.Error("failed to release trigger pool", "error", err)
	}
	if err := jobManager.StopAll(shutdownCtx); err != nil {
		logger.Error("final snapshot flush failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   envOrDefault("HTTP_PORT", "8080"),
		DBHost:                     os.Getenv("DB_HOST"),
		DBPort:                     envOrDefault("DB_PORT", "5432"),
		DBUser:                     os.Getenv("DB_USER"),
		DBPassword:                 os.Getenv("DB_PASSWORD"),
		DBName:                     os.Getenv("DB_NAME"),
		DBSslMode:                  envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:                  os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup:         envOrDefault("KAFKA_CONSUMER_GROUP", "fulfillment"),
		KafkaPaymentCompletedTopic: os.Getenv("KAFKA_PAYMENT_COMPLETED_TOPIC"),
		KafkaOrderChangedTopic:     os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		SnapshotFlushSchedule:      os.Getenv("SNAPSHOT_FLUSH_SCHEDULE"),
		DocumentsBaseURL:           envOrDefault("DOCUMENTS_BASE_URL", "https://documents.local"),
		DefaultCarrier:             os.Getenv("DEFAULT_CARRIER"),
	}

	timeout, err := time.ParseDuration(envOrDefault("TRIGGER_TIMEOUT", "5s"))
	if err != nil {
		log.Fatalf("Invalid TRIGGER_TIMEOUT: %v", err)
	}
	config.TriggerTimeout = timeout

	poolSize, err := strconv.Atoi(envOrDefault("TRIGGER_POOL_SIZE", "16"))
	if err != nil {
		log.Fatalf("Invalid TRIGGER_POOL_SIZE: %v", err)
	}
	config.TriggerPoolSize = poolSize

	return config
}

// loadDotEnv reads .env when present; the real environment always wins.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, adapter *trigger.Adapter, port string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer(adapter).RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	return e
}
