package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unfurl/internal/auth"
	"unfurl/internal/domain"
)

func TestSessionAuthMiddleware(t *testing.T) {
	verifier := auth.NewVerifier("test-secret")
	validToken, err := verifier.Sign("dev@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantEmail  string
		wantAnon   bool
	}{
		{
			name:       "valid token resolves identity",
			authHeader: "Bearer " + validToken,
			wantEmail:  "dev@example.com",
		},
		{
			name:     "no header stays anonymous",
			wantAnon: true,
		},
		{
			name:       "invalid token stays anonymous",
			authHeader: "Bearer garbage",
			wantAnon:   true,
		},
		{
			name:       "non-bearer header stays anonymous",
			authHeader: "Basic dXNlcjpwYXNz",
			wantAnon:   true,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIdentity *domain.Identity
			var gotOK bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIdentity, gotOK = IdentityFrom(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/metatags", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			NewSessionAuth(logger, verifier).Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantAnon {
				if gotOK {
					t.Errorf("expected anonymous request, got identity %+v", gotIdentity)
				}
				return
			}

			if !gotOK {
				t.Fatal("expected authenticated request")
			}
			if gotIdentity.Email != tt.wantEmail {
				t.Errorf("email = %q, want %q", gotIdentity.Email, tt.wantEmail)
			}
		})
	}
}
