package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unfurl/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionAuth resolves an authenticated identity from a bearer session
// token. Requests without a valid token pass through anonymously; rejecting
// them is the rate limiter's job, not this middleware's.
type SessionAuth struct {
	verifier domain.SessionVerifier
	logger   *slog.Logger
}

// NewSessionAuth creates a new session authentication middleware
func NewSessionAuth(logger *slog.Logger, verifier domain.SessionVerifier) *SessionAuth {
	return &SessionAuth{
		verifier: verifier,
		logger:   logger,
	}
}

// Middleware returns the authentication middleware handler
func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := a.verifier.Verify(token)
		if err != nil {
			a.logger.Debug("Session token rejected, treating request as anonymous",
				"path", r.URL.Path,
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		a.logger.Debug("Request authenticated",
			"path", r.URL.Path,
			"email", identity.Email,
		)

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// WithIdentity stores the authenticated identity on the context
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns the authenticated identity for the request, if any
func IdentityFrom(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.Identity)
	return identity, ok
}
