package domain

import "errors"

var (
	// ErrInvalidURL means the caller-supplied url parameter is missing or
	// not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrRateLimited means the anonymous quota for the bucket is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrTitleWithoutText means a <title> element had no text child. Pages
	// are expected to always carry one; hitting this is a defect in the
	// page, surfaced as an extraction failure rather than silently skipped.
	ErrTitleWithoutText = errors.New("title element has no text child")

	// ErrBadImageRef means the image reference on the page could not be
	// resolved into a valid URL.
	ErrBadImageRef = errors.New("malformed image reference")
)
