// Package limiter throttles sign-in attempts and sign-in link requests.
package limiter

import (
	"context"
	"crypto/sha256"
	"strings"
	"time"
)

// Scopes partition counters so link requests never lock out password sign-in.
const (
	ScopeSignIn = "signin"
	ScopeLink   = "link"
)

// Limiter counts attempts per (subject, ip) and places temporary blocks.
type Limiter interface {
	// Allow reports whether an attempt is currently allowed and optional retry-after.
	Allow(ctx context.Context, subject string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters.
	Success(ctx context.Context, subject string, ipHash []byte) error
	// Failure records an attempt; may place a temporary block.
	Failure(ctx context.Context, subject string, ipHash []byte) (bool, time.Duration, error)
}

// Subject builds the counter key for an email within a scope.
func Subject(scope, email string) string {
	return scope + ":" + strings.ToLower(strings.TrimSpace(email))
}

// HashIP returns a stable hash for an IP string to avoid storing raw addresses.
func HashIP(ip string) []byte {
	h := sha256.Sum256([]byte(ip))
	return h[:]
}

// Nop never limits. Used when no database backs the limiter (tests, dev).
type Nop struct{}

func (Nop) Allow(context.Context, string, []byte) (bool, time.Duration, error) { return true, 0, nil }
func (Nop) Success(context.Context, string, []byte) error                      { return nil }
func (Nop) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	return false, 0, nil
}
