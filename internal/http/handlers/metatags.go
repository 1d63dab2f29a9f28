package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"unfurl/internal/domain"
	"unfurl/internal/http/middleware"
)

// Extractor runs the extraction pipeline for one validated page URL.
type Extractor interface {
	Extract(ctx context.Context, pageURL *url.URL) (*domain.Result, error)
}

const rateLimitedBody = "Don't DDoS me pls \U0001F97A"

type MetatagsHandler struct {
	logger    *slog.Logger
	extractor Extractor
	limiter   domain.RateLimiter
}

func NewMetatagsHandler(logger *slog.Logger, extractor Extractor, limiter domain.RateLimiter) *MetatagsHandler {
	return &MetatagsHandler{
		logger:    logger,
		extractor: extractor,
		limiter:   limiter,
	}
}

// HandleMetatags serves GET /api/v1/metatags?url=...
// The method check lives here rather than in the mux pattern so the 405
// body can name the rejected verb.
func (h *MetatagsHandler) HandleMetatags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, fmt.Sprintf("Method %s Not Allowed", r.Method), http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	// Validate before anything else - no fetch, no limiter work for junk input
	pageURL, err := parsePageURL(r.URL.Query().Get("url"))
	if err != nil {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	// Authenticated callers bypass the limiter entirely
	if _, ok := middleware.IdentityFrom(ctx); !ok {
		allowed, err := h.limiter.Allow(ctx, domain.RateLimitBucket)
		if err != nil {
			// Fail open: the limiter protects the fetcher, it must not
			// take the endpoint down with it
			h.logger.Warn("Rate limiter unavailable, allowing request", "error", err)
		} else if !allowed {
			http.Error(w, rateLimitedBody, http.StatusTooManyRequests)
			return
		}
	}

	result, err := h.extractor.Extract(ctx, pageURL)
	if err != nil {
		h.logger.Error("Extraction failed",
			"error", err,
			"url", pageURL.String(),
			"request_id", middleware.RequestIDFrom(ctx),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, result)
}

// parsePageURL validates the url query parameter as an absolute http(s) URL
func parsePageURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, domain.ErrInvalidURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, domain.ErrInvalidURL
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domain.ErrInvalidURL
	}

	return parsed, nil
}

// writeJSONResponse writes a JSON response to the ResponseWriter
func (h *MetatagsHandler) writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
