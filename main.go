package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/config"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/handlers"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories/memory"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories/redis"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogLogger)
	logger := utils.NewSlogLogger(slogLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize session store
	var redisClient *goredis.Client
	var sessionRepo repositories.SessionRepository = memory.NewSessionRepository()
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Failed to initialize Redis, keeping sessions in memory", "error", err)
		} else {
			sessionRepo = redis.NewSessionRepository(redisClient, cfg.SessionTTL)
			logger.Info("Sessions stored in Redis", "ttl", cfg.SessionTTL.String())
		}
	}

	// Initialize event publisher
	publisher, err := newEventPublisher(ctx, cfg.Events, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Initialize domain data
	datasets, err := domains.NewDatasetProvider()
	if err != nil {
		log.Fatalf("Failed to load domain datasets: %v", err)
	}

	verifier, err := services.NewOTPVerifier(cfg.OTPMode)
	if err != nil {
		log.Fatalf("Failed to initialize OTP verifier: %v", err)
	}
	if cfg.OTPMode == config.OTPModeDemo {
		logger.Warn("OTP demo mode: any 6-digit code is accepted")
	}

	// Initialize services
	serviceManager, err := services.InitializeServiceManager(ctx, services.ServiceManagerDeps{
		Repo:      sessionRepo,
		Registry:  domains.NewRegistry(),
		Datasets:  datasets,
		Verifier:  verifier,
		Publisher: publisher,
		Logger:    slogLogger,
		Validator: validator.New(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(serviceManager, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown services
	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown services", "error", err)
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis", "error", err)
		}
	}

	logger.Info("Server exited")
}

// newEventPublisher picks Kafka when brokers are configured, otherwise the
// in-process channel with an activity log consumer
func newEventPublisher(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (events.EventPublisher, error) {
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.Topic, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.Topic)
		return publisher, nil
	}

	pubSub := events.NewGoChannelPubSub(logger)
	if err := events.ConsumeActivity(ctx, pubSub, cfg.Topic, logger); err != nil {
		return nil, err
	}
	return events.NewWatermillPublisher(pubSub, cfg.Topic, logger), nil
}
