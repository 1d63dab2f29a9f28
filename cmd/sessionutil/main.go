package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"unfurl/internal/auth"
)

// sessionutil mints signed session tokens for callers that should bypass
// the anonymous rate limit.
func main() {
	var (
		email  = flag.String("email", "", "Email to embed in the session token")
		ttl    = flag.Duration("ttl", 30*24*time.Hour, "Token lifetime")
		secret = flag.String("secret", "", "Session secret (defaults to SESSION_SECRET env var)")
	)
	flag.Parse()

	sessionSecret := *secret
	if sessionSecret == "" {
		sessionSecret = os.Getenv("SESSION_SECRET")
	}
	if sessionSecret == "" {
		fmt.Fprintln(os.Stderr, "A session secret is required (-secret or SESSION_SECRET)")
		os.Exit(1)
	}

	if *email == "" {
		fmt.Fprintln(os.Stderr, "An email is required (-email)")
		os.Exit(1)
	}

	token, err := auth.NewVerifier(sessionSecret).Sign(*email, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
