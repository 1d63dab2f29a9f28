package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	SessionSecret string
	LogLevel      string
	RateLimit     int
	RateWindow    time.Duration
}

func Load() *Config {
	config := &Config{
		Port:       getEnvWithDefault("PORT", "8080"),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		RateLimit:  getEnvIntWithDefault("RATE_LIMIT", 30),
		RateWindow: time.Duration(getEnvIntWithDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	// Required environment variables (for database/redis services)
	config.DatabaseURL = mustGetEnv("DATABASE_URL")
	config.RedisURL = mustGetEnv("REDIS_URL")

	// Optional session secret; without it every caller is anonymous
	config.SessionSecret = getEnvWithDefault("SESSION_SECRET", "")

	// Command line flags override environment
	flag.StringVar(&config.Port, "port", config.Port, "Server port")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level")
	flag.Parse()

	return config
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("Ignoring invalid value for %s: %s", key, value)
	}
	return defaultValue
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}
