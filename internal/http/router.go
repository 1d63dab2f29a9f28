package http

import (
	"log/slog"
	"net/http"
	"unfurl/internal/domain"
	"unfurl/internal/http/handlers"
	"unfurl/internal/http/middleware"
)

type Router struct {
	mux             *http.ServeMux
	sessionAuth     *middleware.SessionAuth
	healthHandler   *handlers.HealthHandler
	statsHandler    *handlers.StatsHandler
	metatagsHandler *handlers.MetatagsHandler
}

func NewRouter(
	logger *slog.Logger,
	extractor handlers.Extractor,
	limiter domain.RateLimiter,
	usage domain.UsageRepository,
	verifier domain.SessionVerifier,
) *Router {
	mux := http.NewServeMux()

	return &Router{
		mux:             mux,
		sessionAuth:     middleware.NewSessionAuth(logger, verifier),
		healthHandler:   handlers.NewHealthHandler(logger),
		statsHandler:    handlers.NewStatsHandler(logger, usage),
		metatagsHandler: handlers.NewMetatagsHandler(logger, extractor, limiter),
	}
}

func (r *Router) SetupRoutes() http.Handler {
	// Health check
	r.mux.HandleFunc("GET /health", r.healthHandler.HandleHealth)

	// API v1 routes - usage stats
	r.mux.HandleFunc("GET /api/v1/stats", r.statsHandler.HandleStats)

	// API v1 routes - metatag extraction. Registered without a method
	// pattern: the handler owns the 405 response body
	r.mux.HandleFunc("/api/v1/metatags", r.metatagsHandler.HandleMetatags)

	// Middleware: request IDs, session auth, CORS
	return middleware.CORS(middleware.RequestID(r.sessionAuth.Middleware(r.mux)))
}
