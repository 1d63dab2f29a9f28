package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unfurl/internal/domain"
)

// Verifier validates HMAC-signed session tokens. A token is the base64 of
// "email|expiry-unix" followed by a dot and the base64 of its HMAC-SHA256
// signature under the shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a session verifier. An empty secret disables
// verification: every Verify call fails and all callers stay anonymous.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign mints a session token for an email that expires after ttl.
func (v *Verifier) Sign(email string, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", fmt.Errorf("no session secret configured")
	}
	if email == "" || strings.Contains(email, "|") {
		return "", fmt.Errorf("invalid email for session token: %q", email)
	}

	payload := email + "|" + strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + v.signature(payload), nil
}

// Verify checks the token signature and expiry and returns the identity
// it carries.
func (v *Verifier) Verify(token string) (*domain.Identity, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("no session secret configured")
	}

	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return nil, fmt.Errorf("malformed session token")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed session token: %w", err)
	}
	payload := string(payloadBytes)

	if !hmac.Equal([]byte(v.signature(payload)), []byte(sig)) {
		return nil, fmt.Errorf("session token signature mismatch")
	}

	email, expiryStr, found := strings.Cut(payload, "|")
	if !found || email == "" {
		return nil, fmt.Errorf("malformed session payload")
	}

	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed session expiry: %w", err)
	}
	if time.Now().Unix() > expiry {
		return nil, fmt.Errorf("session token expired")
	}

	return &domain.Identity{Email: email}, nil
}

func (v *Verifier) signature(payload string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
