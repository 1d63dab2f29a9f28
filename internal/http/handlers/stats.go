package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"unfurl/internal/domain"
)

type StatsHandler struct {
	logger *slog.Logger
	usage  domain.UsageRepository
}

// StatsResponse reports aggregate page check counts
type StatsResponse struct {
	PagesChecked    int64  `json:"pages_checked"`
	MissingMetadata int64  `json:"missing_metadata"`
	Timestamp       string `json:"timestamp"`
}

func NewStatsHandler(logger *slog.Logger, usage domain.UsageRepository) *StatsHandler {
	return &StatsHandler{
		logger: logger,
		usage:  usage,
	}
}

func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	totals, err := h.usage.Totals(r.Context())
	if err != nil {
		h.logger.Error("Failed to retrieve usage totals", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := &StatsResponse{
		PagesChecked:    totals.Checked,
		MissingMetadata: totals.Missing,
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
