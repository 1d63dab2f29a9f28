package meta

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"
	"unfurl/internal/domain"
)

// recordTimeout bounds a single background usage write
const recordTimeout = 10 * time.Second

// Service runs the extraction pipeline for one page: fetch, sanitize if the
// host calls for it, walk the tags, resolve the image, and record usage in
// the background.
type Service struct {
	logger  *slog.Logger
	fetcher *Fetcher
	usage   domain.UsageRepository

	// Tracks in-flight usage writes so shutdown can drain them
	pending sync.WaitGroup
}

// New creates a new extraction service
func New(logger *slog.Logger, usage domain.UsageRepository) *Service {
	return &Service{
		logger:  logger,
		fetcher: NewFetcher(logger),
		usage:   usage,
	}
}

// Extract fetches the page and returns its normalized metadata. Exactly one
// usage record is submitted per completed extraction; the caller never
// waits for it.
func (s *Service) Extract(ctx context.Context, pageURL *url.URL) (*domain.Result, error) {
	body, err := s.fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		return nil, err
	}

	if needsSanitizing(pageURL) {
		body, err = stripScripts(body)
		if err != nil {
			return nil, err
		}
	}

	tags, err := ExtractTags(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	image, err := ResolveImageURL(pageURL, tags.ImageRef())
	if err != nil {
		return nil, err
	}

	result := &domain.Result{
		Title:       tags.Title(),
		Description: tags.Description(),
		Image:       image,
	}

	s.recordUsage(pageURL.String(), result.MissingMetadata())

	s.logger.Info("Extraction completed",
		"url", pageURL.String(),
		"missing_metadata", result.MissingMetadata(),
	)

	return result, nil
}

// recordUsage submits the usage write without blocking the response path.
// The write runs on a background context so it survives the request
// handler returning; failures are logged and swallowed.
func (s *Service) recordUsage(pageURL string, missing bool) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := s.usage.Record(ctx, pageURL, missing); err != nil {
			s.logger.Warn("Failed to record page check",
				"error", err,
				"url", pageURL,
			)
		}
	}()
}

// Drain blocks until all in-flight usage writes have finished. Called
// during graceful shutdown after the HTTP server has stopped.
func (s *Service) Drain() {
	s.pending.Wait()
}
