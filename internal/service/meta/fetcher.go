package meta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// fetchTimeout bounds the whole outbound request; on expiry the
	// in-flight fetch is aborted and surfaced as a failure
	fetchTimeout = 5 * time.Second

	// maxBodySize caps how much of a page we read (1MB)
	maxBodySize = 1024 * 1024

	userAgent = "Mozilla/5.0 (compatible; UnfurlBot/1.0)"
)

// Fetcher retrieves page HTML over HTTP. One fetch per request, no retries.
type Fetcher struct {
	logger     *slog.Logger
	httpClient *http.Client
}

// NewFetcher creates a new page fetcher
func NewFetcher(logger *slog.Logger) *Fetcher {
	return &Fetcher{
		logger: logger,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Fetch performs a single GET for the page and returns the raw body.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent to avoid blocking
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	f.logger.Debug("Fetched page",
		"url", pageURL,
		"bytes", len(body),
	)

	return body, nil
}
