package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unfurl/internal/auth"
	"unfurl/internal/config"
	unfurlhttp "unfurl/internal/http"
	"unfurl/internal/pkg/logger"
	"unfurl/internal/repository/postgres"
	redisrepo "unfurl/internal/repository/redis"
	"unfurl/internal/service/api"
	"unfurl/internal/service/meta"

	_ "github.com/lib/pq"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	log := logger.New(cfg.LogLevel)
	log.Info("Starting API service...")

	// Connect to PostgreSQL
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		log.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}

	// Run database migrations
	if err := postgres.RunMigrations(db, log); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Redis
	redisClient, err := redisrepo.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Create repositories
	usageRepo := postgres.NewUsageRepository(db, log)
	limiter := redisrepo.NewRateLimitRepository(redisClient, log, cfg.RateLimit, cfg.RateWindow)

	// Create session verifier
	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set - all callers will be rate limited as anonymous")
	}
	verifier := auth.NewVerifier(cfg.SessionSecret)

	// Create extraction service and router
	extractor := meta.New(log, usageRepo)
	router := unfurlhttp.NewRouter(log, extractor, limiter, usageRepo, verifier)

	// Create API service
	apiService, err := api.New(cfg, log, router.SetupRoutes())
	if err != nil {
		log.Error("Failed to create API service", "error", err)
		os.Exit(1)
	}

	// Create a channel to track shutdown completion
	done := make(chan struct{})

	// Start API service in a goroutine
	go func() {
		defer close(done)
		if err := apiService.Start(); err != nil {
			log.Error("API service failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either shutdown signal or service completion
	select {
	case <-quit:
		log.Info("Shutdown signal received, stopping API service...")
	case <-done:
		log.Info("API service completed")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop API service
	if err := apiService.Stop(ctx); err != nil {
		log.Error("Error stopping API service", "error", err)
	}

	// Drain in-flight usage writes before closing the database
	extractor.Drain()

	log.Info("API service shutdown complete")
}
