package domain

import "context"

// RateLimitBucket is the fixed key under which anonymous metatag requests
// are counted.
const RateLimitBucket = "metatags"

// RateLimiter answers whether one more request may pass for a bucket.
type RateLimiter interface {
	// Allow consumes one slot from the bucket's current window and reports
	// whether the request is within quota.
	Allow(ctx context.Context, bucket string) (bool, error)
}

// UsageTotals summarizes recorded page checks.
type UsageTotals struct {
	Checked int64 `json:"pages_checked"`
	Missing int64 `json:"missing_metadata"`
}

// UsageRepository records the outcome of page checks, keyed by page URL.
type UsageRepository interface {
	// Record stores one page check. missing is true when at least one of
	// title/description/image was absent after extraction.
	Record(ctx context.Context, pageURL string, missing bool) error

	// Totals returns aggregate counts across all recorded checks.
	Totals(ctx context.Context) (*UsageTotals, error)
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	Email string
}

// SessionVerifier validates a signed session token and returns the
// identity it carries.
type SessionVerifier interface {
	Verify(token string) (*Identity, error)
}
