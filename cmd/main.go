// @title                       Fruitarians API
// @version                     1.0
// @description                 Fruit marketplace backend.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fruitarians-api/internal/config"
	domainUser "fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/infrastructure/database"
	"fruitarians-api/internal/infrastructure/mail"
	"fruitarians-api/internal/infrastructure/storage"
	"fruitarians-api/internal/logger"
	"fruitarians-api/internal/routes"
	"fruitarians-api/internal/tracing"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("database_driver", cfg.Database.Driver),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := database.Open(startCtx, cfg)
	cancelStart()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	deps := routes.Dependencies{
		Store:    store,
		Uploader: newUploader(cfg),
		Mailer:   newMailer(cfg),
	}

	tp, err := tracing.NewProvider(cfg.Tracing, routes.ServiceName, os.Stdout)
	if err != nil {
		logger.Fatal("Failed to configure tracing", zap.Error(err))
	}
	if tp != nil {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(flushCtx); err != nil {
				logger.Error("Failed to flush traces", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		deps.TracerProvider = tp
		logger.Info("Tracing enabled",
			zap.String("exporter", cfg.Tracing.Exporter),
			zap.Float64("sample_ratio", cfg.Tracing.SampleRatio),
		)
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		deps.Redis = rdb
		logger.Info("Using Redis rate limiter", zap.String("addr", cfg.Redis.Addr))
	}

	router := routes.SetupRoutes(cfg, deps)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
		return
	}

	logger.Info("Server exited properly")
}

func newUploader(cfg *config.Config) domainUser.Uploader {
	if cfg.Storage.Bucket == "" {
		logger.Warn("S3_BUCKET not set, profile image uploads are disabled")
		return storage.DisabledUploader{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploader, err := storage.NewS3Uploader(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to configure S3 uploader", zap.Error(err))
	}
	return uploader
}

func newMailer(cfg *config.Config) domainUser.Mailer {
	if cfg.Mail.APIKey == "" || cfg.Mail.APISecret == "" {
		logger.Warn("Mailjet credentials not set, reset tokens are only logged")
		return mail.LogMailer{}
	}
	return mail.NewMailjetClient(cfg.Mail, cfg.JWT.ResetTTL())
}
