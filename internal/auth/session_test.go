package auth

import (
	"strings"
	"testing"
	"time"
)

func TestVerifierRoundtrip(t *testing.T) {
	verifier := NewVerifier("test-secret")

	token, err := verifier.Sign("dev@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	identity, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.Email != "dev@example.com" {
		t.Errorf("email = %q, want dev@example.com", identity.Email)
	}
}

func TestVerifierRejections(t *testing.T) {
	verifier := NewVerifier("test-secret")
	valid, err := verifier.Sign("dev@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	expired, err := verifier.Sign("dev@example.com", -time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	otherSecret, err := NewVerifier("other-secret").Sign("dev@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	// Flip the last signature character
	tampered := valid[:len(valid)-1]
	if strings.HasSuffix(valid, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired token", token: expired},
		{name: "tampered signature", token: tampered},
		{name: "token signed with another secret", token: otherSecret},
		{name: "missing signature", token: "YWJjZA"},
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := verifier.Verify(tt.token); err == nil {
				t.Errorf("Verify(%q) expected error", tt.token)
			}
		})
	}
}

func TestVerifierWithoutSecret(t *testing.T) {
	verifier := NewVerifier("")

	if _, err := verifier.Sign("dev@example.com", time.Hour); err == nil {
		t.Error("Sign() expected error without a secret")
	}

	token, _ := NewVerifier("some-secret").Sign("dev@example.com", time.Hour)
	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() expected error without a secret")
	}
}
