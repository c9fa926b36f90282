package main

// @title           Social Service API
// @version         1.0
// @description     A RESTful API for groups, posts, friendships and followers
// @host            localhost:8080
// @BasePath        /api
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-service/configs"
	"social-service/internal/database"
	"social-service/internal/events"
	"social-service/internal/router"
	"social-service/internal/storage"
	"social-service/internal/upload"
)

func main() {
	// Load configuration
	cfg := configs.Load()

	slog.Info("Starting social server")

	// Initialize storage backend
	var store storage.Storage
	switch cfg.StorageDriver {
	case "memory":
		slog.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	default:
		db, err := database.NewMySQLDB(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
		if err != nil {
			slog.Error("Failed to connect to MySQL", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(db); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		store = storage.NewGormStorage(db)
	}

	// Initialize object storage for uploads, optional
	var objectStore *upload.ObjectStore
	if cfg.MinIOEndpoint != "" {
		var err error
		objectStore, err = upload.NewObjectStore(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket)
		if err != nil {
			slog.Error("Failed to connect to MinIO", "error", err)
			os.Exit(1)
		}
		slog.Info("Object storage ready", "bucket", cfg.MinIOBucket)
	} else {
		slog.Info("No MinIO endpoint configured, uploads disabled")
	}

	// Initialize event publisher, optional
	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		p, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			slog.Error("Failed to connect to Kafka", "error", err)
			os.Exit(1)
		}
		publisher = p
		slog.Info("Event publisher ready", "topic", cfg.KafkaTopic)
	}
	defer publisher.Close()

	// Initialize router with all dependencies
	r := router.NewRouter(store, publisher, objectStore, cfg.JWTSecret)
	r.SetupRoutes()

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
