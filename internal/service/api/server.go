package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"unfurl/internal/config"
)

// APIService handles HTTP API requests
type APIService struct {
	config *config.Config
	logger *slog.Logger
	server *http.Server
}

// New creates a new API service serving the given handler
func New(config *config.Config, logger *slog.Logger, handler http.Handler) (*APIService, error) {
	apiService := &APIService{
		config: config,
		logger: logger,
		server: &http.Server{
			Addr:         ":" + config.Port,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	return apiService, nil
}

// Start begins serving the API
func (s *APIService) Start() error {
	s.logger.Info("Starting API server", "port", s.config.Port)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the API server
func (s *APIService) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}
