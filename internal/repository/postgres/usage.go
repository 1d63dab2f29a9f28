package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"unfurl/internal/domain"
)

// UsageRepository implements the domain.UsageRepository interface using
// PostgreSQL. Page checks are append-only; aggregation happens at read time.
type UsageRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewUsageRepository creates a new PostgreSQL usage repository
func NewUsageRepository(db *sql.DB, logger *slog.Logger) *UsageRepository {
	return &UsageRepository{
		db:     db,
		logger: logger,
	}
}

// Record stores one page check outcome
func (r *UsageRepository) Record(ctx context.Context, pageURL string, missing bool) error {
	query := `
		INSERT INTO page_checks (url, missing)
		VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, pageURL, missing); err != nil {
		return fmt.Errorf("failed to record page check: %w", err)
	}

	r.logger.Debug("Page check recorded",
		"url", pageURL,
		"missing", missing,
	)

	return nil
}

// Totals returns aggregate counts across all recorded checks
func (r *UsageRepository) Totals(ctx context.Context) (*domain.UsageTotals, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE missing)
		FROM page_checks`

	totals := &domain.UsageTotals{}
	err := r.db.QueryRowContext(ctx, query).Scan(&totals.Checked, &totals.Missing)
	if err != nil {
		r.logger.Error("Failed to query usage totals", "error", err)
		return nil, fmt.Errorf("failed to query usage totals: %w", err)
	}

	return totals, nil
}
